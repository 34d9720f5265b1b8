package stack

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/CPU-commits/LMS_Backend/settings"
)

var settingsData = settings.GetSettings()

type NatsClient struct {
	lock sync.Mutex
	conn *nats.Conn
}

func (n *NatsClient) connection() (*nats.Conn, error) {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.conn != nil && n.conn.IsConnected() {
		return n.conn, nil
	}
	conn, err := nats.Connect(fmt.Sprintf("nats://%s:4222", settingsData.NATS_HOST))
	if err != nil {
		return nil, err
	}
	n.conn = conn
	return conn, nil
}

func (n *NatsClient) Publish(subject string, data []byte) error {
	conn, err := n.connection()
	if err != nil {
		return err
	}
	return conn.Publish(subject, data)
}

func (n *NatsClient) PublishEncode(subject string, data interface{}) error {
	dataEncoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return n.Publish(subject, dataEncoded)
}

func NewNats() *NatsClient {
	return &NatsClient{}
}
