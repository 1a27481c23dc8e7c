package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
)

// Ledger is a Redis-backed token ledger. Every mutation runs as a single Lua
// script so checks and credits commit together.
type Ledger struct {
	client *redis.Client
}

// New creates a ledger on an existing client, usually the record store's
func New(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

var _ ledger.Ledger = (*Ledger)(nil)

func (l *Ledger) CreateMint(ctx context.Context, mint model.MintRef, authority model.Identity) error {
	err := createMintScript.Run(ctx, l.client, []string{mintKey(mint)}, authority.String()).Err()
	return translate(err)
}

func (l *Ledger) OpenAccount(ctx context.Context, account model.AccountRef, mint model.MintRef, owner model.Identity) error {
	keys := []string{accountKey(account), mintKey(mint)}
	err := openAccountScript.Run(ctx, l.client, keys, string(mint), owner.String()).Err()
	return translate(err)
}

func (l *Ledger) GetMint(ctx context.Context, mint model.MintRef) (*ledger.Mint, error) {
	fields, err := l.client.HGetAll(ctx, mintKey(mint)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ledger.ErrMintNotFound
	}

	authority, err := model.ParseIdentity(fields["authority"])
	if err != nil {
		return nil, err
	}
	supply, err := strconv.ParseUint(fields["supply"], 10, 64)
	if err != nil {
		return nil, err
	}
	return &ledger.Mint{Authority: authority, Supply: supply}, nil
}

func (l *Ledger) GetAccount(ctx context.Context, account model.AccountRef) (*ledger.Account, error) {
	fields, err := l.client.HGetAll(ctx, accountKey(account)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ledger.ErrAccountNotFound
	}

	owner, err := model.ParseIdentity(fields["owner"])
	if err != nil {
		return nil, err
	}
	balance, err := strconv.ParseUint(fields["balance"], 10, 64)
	if err != nil {
		return nil, err
	}
	return &ledger.Account{
		Mint:    model.MintRef(fields["mint"]),
		Owner:   owner,
		Balance: balance,
	}, nil
}

func (l *Ledger) MintTo(ctx context.Context, mint model.MintRef, destination model.AccountRef, quantity uint64, authority model.Identity) error {
	if quantity == 0 {
		return ledger.ErrZeroQuantity
	}
	if quantity > ledger.MaxSupply {
		return ledger.ErrSupplyOverflow
	}

	keys := []string{mintKey(mint), accountKey(destination)}
	err := mintToScript.Run(ctx, l.client, keys,
		strconv.FormatUint(quantity, 10),
		authority.String(),
		string(mint),
		strconv.FormatUint(ledger.MaxSupply, 10),
	).Err()
	return translate(err)
}

// translate maps script error replies onto ledger errors
func translate(err error) error {
	if err == nil {
		return nil
	}
	var redisErr redis.Error
	if !errors.As(err, &redisErr) {
		return err
	}

	msg := redisErr.Error()
	switch {
	case strings.Contains(msg, replyMintExists):
		return ledger.ErrMintExists
	case strings.Contains(msg, replyMintNotFound):
		return ledger.ErrMintNotFound
	case strings.Contains(msg, replyAccountExists):
		return ledger.ErrAccountExists
	case strings.Contains(msg, replyAccountNotFound):
		return ledger.ErrAccountNotFound
	case strings.Contains(msg, replyAuthorityMismatch):
		return ledger.ErrMintAuthorityMismatch
	case strings.Contains(msg, replyAccountMintMismatch):
		return ledger.ErrAccountMintMismatch
	case strings.Contains(msg, replySupplyOverflow):
		return ledger.ErrSupplyOverflow
	default:
		return err
	}
}
