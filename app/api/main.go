package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/properties-dex/goapi/base/ctx"
	"github.com/properties-dex/goapi/base/database/mongoclient"
	"github.com/properties-dex/goapi/base/database/redisclient"
	"github.com/properties-dex/goapi/base/log"
	"github.com/properties-dex/goapi/base/metrics"
	bValidator "github.com/properties-dex/goapi/base/validator"
	"github.com/properties-dex/goapi/domain"
	mmiddleware "github.com/properties-dex/goapi/middleware"
	"github.com/properties-dex/goapi/service/chain"
	"github.com/properties-dex/goapi/service/chain/contract"
	"github.com/properties-dex/goapi/service/ens"
	"github.com/properties-dex/goapi/service/notifier"
	"github.com/properties-dex/goapi/service/pinata"
	"github.com/properties-dex/goapi/service/query"
	"github.com/properties-dex/goapi/service/redis"
	"github.com/properties-dex/goapi/service/wallet"
	account_delivery "github.com/properties-dex/goapi/stores/account/delivery/http"
	account_repository "github.com/properties-dex/goapi/stores/account/repository"
	account_usecase "github.com/properties-dex/goapi/stores/account/usecase"
	auth_delivery "github.com/properties-dex/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/properties-dex/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/properties-dex/goapi/stores/auth/usecase"
	ens_delivery "github.com/properties-dex/goapi/stores/ens/delivery/http"
	file_delivery "github.com/properties-dex/goapi/stores/file/delivery/http"
	file_usecase "github.com/properties-dex/goapi/stores/file/usecase"
	hc_delivery "github.com/properties-dex/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/properties-dex/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/properties-dex/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/properties-dex/goapi/stores/listing/delivery/http"
	listing_repository "github.com/properties-dex/goapi/stores/listing/repository"
	listing_usecase "github.com/properties-dex/goapi/stores/listing/usecase"
	listing_worker "github.com/properties-dex/goapi/stores/listing/worker"
	paytoken_repository "github.com/properties-dex/goapi/stores/paytoken/repository"
	token_delivery "github.com/properties-dex/goapi/stores/token/delivery/http"
	token_repository "github.com/properties-dex/goapi/stores/token/repository"
	token_usecase "github.com/properties-dex/goapi/stores/token/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	pinata := pinata.New(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))
	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.nodeUri"))

	// init chain service
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	rpcUrl := viper.GetString("network.rpcUrl")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        map[int32]string{int32(chainId): rpcUrl},
		RpcConcurrency: viper.GetInt("network.rpcConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	erc20Service := contract.NewErc20(chainService)
	marketplaceService := contract.NewMarketplace(chainService)
	tokenCreatorService := contract.NewTokenCreator(chainService)
	marketplaceAddress := domain.Address(viper.GetString("contracts.marketplace")).ToLower()
	tokenCreatorAddress := domain.Address(viper.GetString("contracts.tokenCreator")).ToLower()

	signer, err := wallet.NewKeyedSigner(viper.GetString("signer.privateKey"))
	if err != nil {
		context.WithField("err", err).Panic("wallet.NewKeyedSigner failed")
	}

	ensService := ens.New(viper.GetString("ens.rpcUrl"), redisCache)

	discordNotifier := notifier.NewDiscordNotifier(notifier.DiscordConfig{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		SiteUrl:   viper.GetString("site.url"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	tokenRepo := token_repository.NewTokenRepo(q)
	listingRepo := listing_repository.NewChainRepo(&listing_repository.ChainRepoCfg{
		ChainId:            chainId,
		MarketplaceAddress: marketplaceAddress,
		Marketplace:        marketplaceService,
		Erc20:              erc20Service,
		PayTokens:          paytokenRepo,
	})

	seedPayTokens(context, paytokenRepo, chainId)

	hc := hc_usecase.New(hcRepo)
	file := file_usecase.New(pinata, ipfsShell)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		ChainId:      chainId,
		Chain:        chainService,
		Erc20:        erc20Service,
		PayTokens:    paytokenRepo,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Repo:    listingRepo,
		Redis:   redisCache,
		Ens:     ensService,
		Metrics: metrics.New("listing"),
	})
	market := listing_usecase.NewMarketUseCase(&listing_usecase.MarketUseCaseCfg{
		ChainId:            chainId,
		MarketplaceAddress: marketplaceAddress,
		Marketplace:        marketplaceService,
		Erc20:              erc20Service,
		PayTokens:          paytokenRepo,
		ListingRepo:        listingRepo,
		ListingUC:          listing,
		Signer:             signer,
		Notifier:           discordNotifier,
		Metrics:            metrics.New("market"),
	})
	token := token_usecase.New(&token_usecase.TokenUseCaseCfg{
		ChainId:             chainId,
		TokenCreatorAddress: tokenCreatorAddress,
		TokenCreator:        tokenCreatorService,
		Repo:                tokenRepo,
		Signer:              signer,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account)
	listing_delivery.New(e, listing, market, viper.GetString("site.url"), authMiddleware)
	token_delivery.New(e, token, authMiddleware)
	file_delivery.New(e, file, authMiddleware)
	ens_delivery.New(e, ensService)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	// warm the listing snapshot before serving, a cold cache would make the
	// first browse pay the full aggregation cost
	if err := listing.Refresh(context); err != nil {
		context.WithField("err", err).Warn("initial listing refresh failed")
	}

	workerCtx, cancelWorker := ctx.WithCancel(context)
	refresher := listing_worker.NewRefresher(&listing_worker.RefresherCfg{
		Listing:  listing,
		Interval: viper.GetDuration("listing.refreshInterval"),
	})
	refresher.Start(workerCtx)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancelWorker()
	refresher.Wait()
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// seedPayTokens upserts the configured payment tokens so aggregation and
// purchase flows can resolve symbols and decimals without touching chain.
func seedPayTokens(context ctx.Ctx, repo domain.PayTokenRepo, chainId domain.ChainId) {
	payTokens := viper.Sub("payTokens")
	if payTokens == nil {
		context.Panic("missing payTokens config")
	}
	for k := range payTokens.AllSettings() {
		pt := &domain.PayToken{
			Name:          payTokens.GetString(fmt.Sprintf("%s.name", k)),
			Symbol:        payTokens.GetString(fmt.Sprintf("%s.symbol", k)),
			TokenDecimals: payTokens.GetInt32(fmt.Sprintf("%s.decimals", k)),
			ChainId:       chainId,
			Address:       domain.Address(payTokens.GetString(fmt.Sprintf("%s.address", k))).ToLower(),
			IsPlatform:    payTokens.GetBool(fmt.Sprintf("%s.isPlatform", k)),
		}
		if err := repo.Upsert(context, pt); err != nil {
			context.WithField("err", err).Panic("paytokenRepo.Upsert failed")
		}
	}
}
