package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/domain/listing"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
	SiteUrl   string
}

type discordNotifier struct {
	config  DiscordConfig
	discord *discordgo.Session
}

func NewDiscordNotifier(config DiscordConfig) Notifier {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &discordNotifier{config, discord}
}

func (n *discordNotifier) send(c ctx.Ctx, msg *discordgo.MessageEmbed) {
	if _, err := n.discord.ChannelMessageSendEmbed(n.config.ChannelId, msg); err != nil {
		c.WithField("err", err).Warn("discord.ChannelMessageSendEmbed failed")
	}
}

func (n *discordNotifier) NotifyListed(c ctx.Ctx, l *listing.Listing) {
	msg := &discordgo.MessageEmbed{
		Title:       "New property listed!",
		Description: fmt.Sprintf("%s?listingId=%d", n.config.SiteUrl, l.Id),
		Image: &discordgo.MessageEmbedImage{
			URL: l.Metadata.ImageUrl,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Property", Value: fmt.Sprintf("%s (%s)", l.Token.Name, l.Token.Symbol)},
			{Name: "Shares", Value: l.Token.Amount},
			{Name: "Price per share", Value: fmt.Sprintf("%s %s", l.Token.PricePerShare, l.PaymentTokenSymbol)},
		},
	}
	n.send(c, msg)
}

func (n *discordNotifier) NotifySold(c ctx.Ctx, l *listing.Listing, amount string) {
	msg := &discordgo.MessageEmbed{
		Title:       "Shares sold!",
		Description: fmt.Sprintf("%s?listingId=%d", n.config.SiteUrl, l.Id),
		Image: &discordgo.MessageEmbedImage{
			URL: l.Metadata.ImageUrl,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Property", Value: fmt.Sprintf("%s (%s)", l.Token.Name, l.Token.Symbol)},
			{Name: "Shares", Value: amount},
			{Name: "Price per share", Value: fmt.Sprintf("%s %s", l.Token.PricePerShare, l.PaymentTokenSymbol)},
		},
	}
	n.send(c, msg)
}

func (n *discordNotifier) NotifyCancelled(c ctx.Ctx, l *listing.Listing) {
	msg := &discordgo.MessageEmbed{
		Title:       "Listing withdrawn",
		Description: fmt.Sprintf("%s?listingId=%d", n.config.SiteUrl, l.Id),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Property", Value: fmt.Sprintf("%s (%s)", l.Token.Name, l.Token.Symbol)},
		},
	}
	n.send(c, msg)
}
