// Package osc publishes tracked positions to a lighting console
// over OSC/UDP. Delivery is fire-and-forget: no acknowledgment,
// no retry, no backpressure.
package osc

import (
	"fmt"

	gosc "github.com/hypebeast/go-osc/osc"
)

// OSC addresses understood by the grandMA3 show file.
const (
	AddressX = "/stage/person1/x"
	AddressY = "/stage/person1/y"
)

// Publisher is the interface for position output backends.
type Publisher interface {
	// PublishPosition sends one normalized (x, y) pair as two
	// independent messages, one float32 argument each.
	PublishPosition(x, y float64) error

	// Target returns the destination as host:port for display.
	Target() string

	// Close releases resources
	Close() error
}

// Client sends OSC messages to a single UDP destination.
type Client struct {
	client *gosc.Client
	host   string
	port   int
}

// NewClient creates a publisher for the given console address.
// The UDP socket is connectionless; errors surface on send.
func NewClient(host string, port int) *Client {
	return &Client{
		client: gosc.NewClient(host, port),
		host:   host,
		port:   port,
	}
}

// PublishPosition sends x then y. If x fails, y is not attempted.
func (c *Client) PublishPosition(x, y float64) error {
	if err := c.send(AddressX, float32(x)); err != nil {
		return err
	}
	return c.send(AddressY, float32(y))
}

func (c *Client) send(address string, value float32) error {
	msg := gosc.NewMessage(address)
	msg.Append(value)

	if err := c.client.Send(msg); err != nil {
		return fmt.Errorf("send %s to %s: %w", address, c.Target(), err)
	}
	return nil
}

// Target returns the console address as host:port.
func (c *Client) Target() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// Close implements Publisher. The go-osc client holds no
// long-lived socket, so there is nothing to release.
func (c *Client) Close() error {
	return nil
}
