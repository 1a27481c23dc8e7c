package redis

import "github.com/redis/go-redis/v9"

// Error replies raised by the scripts below
const (
	replyMintExists          = "MINT_EXISTS"
	replyMintNotFound        = "MINT_NOT_FOUND"
	replyAccountExists       = "ACCOUNT_EXISTS"
	replyAccountNotFound     = "ACCOUNT_NOT_FOUND"
	replyAuthorityMismatch   = "AUTHORITY_MISMATCH"
	replyAccountMintMismatch = "ACCOUNT_MINT_MISMATCH"
	replySupplyOverflow      = "SUPPLY_OVERFLOW"
)

// KEYS[1] mint; ARGV[1] authority
var createMintScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return redis.error_reply('MINT_EXISTS')
end
redis.call('HSET', KEYS[1], 'authority', ARGV[1], 'supply', 0)
return 1
`)

// KEYS[1] account, KEYS[2] mint; ARGV[1] mint ref, ARGV[2] owner
var openAccountScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 0 then
  return redis.error_reply('MINT_NOT_FOUND')
end
if redis.call('EXISTS', KEYS[1]) == 1 then
  return redis.error_reply('ACCOUNT_EXISTS')
end
redis.call('HSET', KEYS[1], 'mint', ARGV[1], 'owner', ARGV[2], 'balance', 0)
return 1
`)

// KEYS[1] mint, KEYS[2] account; ARGV[1] quantity, ARGV[2] authority,
// ARGV[3] mint ref, ARGV[4] max supply
var mintToScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return redis.error_reply('MINT_NOT_FOUND')
end
if redis.call('EXISTS', KEYS[2]) == 0 then
  return redis.error_reply('ACCOUNT_NOT_FOUND')
end
if redis.call('HGET', KEYS[1], 'authority') ~= ARGV[2] then
  return redis.error_reply('AUTHORITY_MISMATCH')
end
if redis.call('HGET', KEYS[2], 'mint') ~= ARGV[3] then
  return redis.error_reply('ACCOUNT_MINT_MISMATCH')
end
local qty = tonumber(ARGV[1])
local supply = tonumber(redis.call('HGET', KEYS[1], 'supply'))
if qty > tonumber(ARGV[4]) - supply then
  return redis.error_reply('SUPPLY_OVERFLOW')
end
redis.call('HINCRBY', KEYS[1], 'supply', qty)
redis.call('HINCRBY', KEYS[2], 'balance', qty)
return 1
`)
