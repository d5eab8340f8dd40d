package kafka

import (
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"hotel.reservation.created"`
}

// EventReservation is published once a reservation commits.
type EventReservation struct {
	ReservationUid string `json:"reservationUid"`
	ClientID       int    `json:"clientId"`
	RoomID         int    `json:"roomId"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
