package repository

import (
	"context"
	"time"

	redisapp "eventcraft/internal/storage/redis"
)

// RedisBookingLedger keeps a TTL'd record of notified booking ids so a
// repeated trigger for the same booking sends no second round of emails.
type RedisBookingLedger struct {
	Client *redisapp.Client
}

func NewRedisBookingLedger(client *redisapp.Client) *RedisBookingLedger {
	return &RedisBookingLedger{Client: client}
}

// MarkNotified records the booking id and reports whether this was the
// first notification for it.
func (r *RedisBookingLedger) MarkNotified(ctx context.Context, bookingID string, ttl time.Duration) (bool, error) {
	return r.Client.SetNX(ctx, bookingKey(bookingID), "1", ttl).Result()
}

// Forget drops the record so the next trigger for this id sends again.
// Used when the notification behind the record never went out.
func (r *RedisBookingLedger) Forget(ctx context.Context, bookingID string) error {
	return r.Client.Del(ctx, bookingKey(bookingID)).Err()
}

func bookingKey(id string) string {
	return "booking_notified:" + id
}
