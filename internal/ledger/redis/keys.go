package redis

import (
	"fmt"

	"github.com/mcoot/gamemodules/internal/model"
)

const keyPrefix = "gmod:ledger"

// mintKey returns the Redis hash key for a mint
func mintKey(mint model.MintRef) string {
	return fmt.Sprintf("%s:mint:%s", keyPrefix, mint)
}

// accountKey returns the Redis hash key for a token account
func accountKey(account model.AccountRef) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, account)
}
