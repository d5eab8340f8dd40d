package handler

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/pkg/kafka"
	"github.com/IBM/sarama"
)

type bookingLog struct {
	producer sarama.SyncProducer
	topic    string
}

type BookingLog interface {
	Log(ev kafka.EventReservation) error
}

func NewBookingLog(producer sarama.SyncProducer, topic string) *bookingLog {
	return &bookingLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *bookingLog) Log(ev kafka.EventReservation) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	_, _, err = l.producer.SendMessage(msg)
	return err
}

func bookingEvent(res model.Reservation) kafka.EventReservation {
	return kafka.EventReservation{
		ReservationUid: res.ReservationUid,
		ClientID:       res.ClientID,
		RoomID:         res.RoomID,
		StartDate:      res.StartDate.Format(time.DateOnly),
		EndDate:        res.EndDate.Format(time.DateOnly),
	}
}
