package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/signalsfoundry/flightcheck/core"
	"github.com/signalsfoundry/flightcheck/internal/logging"
	"github.com/signalsfoundry/flightcheck/model"
)

const (
	qos    = 1
	retain = false
)

// MQTTReporter publishes diagnostics to the fleet broker so ground-control
// dashboards see rejections without polling the device.
type MQTTReporter struct {
	client mqtt.Client
	topic  string
	log    logging.Logger
}

// NewMQTTReporter publishes diagnostics for one device.
func NewMQTTReporter(client mqtt.Client, deviceID string, log logging.Logger) *MQTTReporter {
	if log == nil {
		log = logging.Noop()
	}
	return &MQTTReporter{
		client: client,
		topic:  fmt.Sprintf("/devices/%s/events/feasibility", deviceID),
		log:    log,
	}
}

type diagnosticMessage struct {
	Timestamp int64  `json:"timestamp"`
	StorageID string `json:"storage_id"`
	Severity  string `json:"severity"`
	Code      string `json:"code"`
	Item      int    `json:"item,omitempty"`
	Message   string `json:"message"`
}

func (r *MQTTReporter) ReportViolation(ctx context.Context, mission model.Mission, v core.Violation) {
	msg := diagnosticMessage{
		Timestamp: time.Now().UnixMilli(),
		StorageID: mission.StorageID,
		Severity:  v.Severity.String(),
		Code:      string(v.Code),
		Item:      v.Index,
		Message:   v.Message,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		r.log.Warn(ctx, "failed to encode diagnostic", logging.Err(err))
		return
	}

	token := r.client.Publish(r.topic, qos, retain, payload)
	if token.Wait() && token.Error() != nil {
		r.log.Warn(ctx, "failed to publish diagnostic",
			logging.String("topic", r.topic),
			logging.Err(token.Error()),
		)
	}
}

// Connect dials the broker and blocks until the connection settles.
func Connect(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to broker %q: %w", brokerURL, token.Error())
	}
	return client, nil
}
