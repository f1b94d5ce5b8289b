package domain

type Table string

const (
	TableAccounts  Table = "accounts"
	TablePayTokens Table = "payTokens"
	TableTokens    Table = "tokens"
)
