package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key patterns for live match data.
func stateKey(matchID string) string { return "match:" + matchID + ":state" }
func hintKey(matchID, mode string, guessCount int) string {
	return "match:" + matchID + ":hint:" + mode + ":" + strconv.Itoa(guessCount)
}

// hintTTL bounds how long a cached hint lives. Hints are keyed by the guess
// count they were computed at, so staleness is structural, not temporal; the
// TTL only stops abandoned matches from pinning memory.
const hintTTL = 24 * time.Hour

// SetMatchState stores the live match state JSON.
func (c *Client) SetMatchState(ctx context.Context, matchID string, state json.RawMessage) error {
	return c.rdb.Set(ctx, stateKey(matchID), []byte(state), 0).Err()
}

// GetMatchState retrieves the live match state JSON, or nil when absent.
func (c *Client) GetMatchState(ctx context.Context, matchID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, stateKey(matchID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get match state: %w", err)
	}
	return json.RawMessage(data), nil
}

// SetHint caches a computed hint payload for a match at a given guess count.
func (c *Client) SetHint(ctx context.Context, matchID, mode string, guessCount int, payload json.RawMessage) error {
	return c.rdb.Set(ctx, hintKey(matchID, mode, guessCount), []byte(payload), hintTTL).Err()
}

// GetHint retrieves a cached hint payload, or nil on a cache miss.
func (c *Client) GetHint(ctx context.Context, matchID, mode string, guessCount int) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, hintKey(matchID, mode, guessCount)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hint: %w", err)
	}
	return json.RawMessage(data), nil
}

// DeleteMatchData removes all Redis data for a match (on match end).
func (c *Client) DeleteMatchData(ctx context.Context, matchID string) error {
	iter := c.rdb.Scan(ctx, 0, "match:"+matchID+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan match keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
