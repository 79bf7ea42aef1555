package network

import (
	"fmt"

	"github.com/go-redis/redis/v7"
	"github.com/hetarchief/aip-services/models/service"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(address, password string, db int) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     address,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *RedisClient) Ping() (string, error) {
	return c.client.Ping().Result()
}

// WorkResultGet returns the stored work result for the given correlation
// id and operation, or an error if none exists.
func (c *RedisClient) WorkResultGet(correlationID, operation string) (*service.WorkResult, error) {
	field := fmt.Sprintf("result:%s", operation)
	data, err := c.client.HGet(correlationID, field).Result()
	if err != nil {
		return nil, fmt.Errorf("WorkResultGet (%s, %s): %s",
			correlationID, operation, err.Error())
	}
	return service.WorkResultFromJSON(data)
}

func (c *RedisClient) WorkResultSave(correlationID string, result *service.WorkResult) error {
	field := fmt.Sprintf("result:%s", result.Operation)
	jsonData, err := result.ToJSON()
	if err != nil {
		return err
	}
	_, err = c.client.HSet(correlationID, field, jsonData).Result()
	return err
}

func (c *RedisClient) WorkResultDelete(correlationID, operation string) error {
	field := fmt.Sprintf("result:%s", operation)
	_, err := c.client.HDel(correlationID, field).Result()
	return err
}
