package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// checkoutTTL bounds one checkout attempt; the staging slot disappears on
// its own if the order is never placed.
const checkoutTTL = 30 * time.Minute

type RedisCartRepositoryImpl struct {
	rdb *redis.Client
}

func CreateNewCartRepository(rdb *redis.Client) CartRepository {
	return &RedisCartRepositoryImpl{rdb: rdb}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func checkoutKey(userID string) string {
	return fmt.Sprintf("checkout:%s", userID)
}

func (r *RedisCartRepositoryImpl) GetCart(ctx context.Context, userID string) (cart domain.Cart, err error) {
	val, err := r.rdb.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCart").Msg("")
		return
	}

	if err = json.Unmarshal(val, &cart); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCart").Msg("")
		return
	}

	return cart, nil
}

func (r *RedisCartRepositoryImpl) SaveCart(ctx context.Context, userID string, cart domain.Cart) (err error) {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	err = r.rdb.Set(ctx, cartKey(userID), data, 0).Err()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveCart").Msg("")
	}

	return
}

func (r *RedisCartRepositoryImpl) DeleteCart(ctx context.Context, userID string) (err error) {
	err = r.rdb.Del(ctx, cartKey(userID)).Err()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCart").Msg("")
	}

	return
}

func (r *RedisCartRepositoryImpl) SaveCheckout(ctx context.Context, userID string, items []domain.CartItem) (err error) {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = r.rdb.Set(ctx, checkoutKey(userID), data, checkoutTTL).Err()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveCheckout").Msg("")
	}

	return
}

func (r *RedisCartRepositoryImpl) GetCheckout(ctx context.Context, userID string) (items []domain.CartItem, err error) {
	val, err := r.rdb.Get(ctx, checkoutKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCheckout").Msg("")
		return
	}

	if err = json.Unmarshal(val, &items); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCheckout").Msg("")
		return
	}

	return items, nil
}

func (r *RedisCartRepositoryImpl) DeleteCheckout(ctx context.Context, userID string) (err error) {
	err = r.rdb.Del(ctx, checkoutKey(userID)).Err()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCheckout").Msg("")
	}

	return
}
