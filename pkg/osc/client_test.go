package osc

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// listenUDP opens a throwaway UDP listener on localhost.
func listenUDP(t *testing.T) (*net.UDPConn, int) {
	t.Helper()

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn, conn.LocalAddr().(*net.UDPAddr).Port
}

func readDatagram(t *testing.T, conn *net.UDPConn) []byte {
	t.Helper()

	buf := make([]byte, 512)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err, "expected a datagram")

	return buf[:n]
}

func TestClient_PublishPositionSendsTwoDatagrams(t *testing.T) {
	conn, port := listenUDP(t)
	c := NewClient("127.0.0.1", port)
	defer c.Close()

	require.NoError(t, c.PublishPosition(0.3, 0.7))

	first := readDatagram(t, conn)
	second := readDatagram(t, conn)

	// Each datagram is one OSC message: padded address then a
	// float32 typetag. UDP gives no ordering promise, so match
	// addresses without assuming send order.
	var sawX, sawY bool
	for _, dgram := range [][]byte{first, second} {
		require.Contains(t, string(dgram), ",f")
		switch {
		case bytes.HasPrefix(dgram, []byte(AddressX)):
			sawX = true
		case bytes.HasPrefix(dgram, []byte(AddressY)):
			sawY = true
		}
	}
	require.True(t, sawX, "one message should carry the x address")
	require.True(t, sawY, "one message should carry the y address")
}

func TestClient_Target(t *testing.T) {
	c := NewClient("192.168.1.50", 8000)
	require.Equal(t, "192.168.1.50:8000", c.Target())
}

func TestMock_RecordsPositions(t *testing.T) {
	m := NewMock()

	require.NoError(t, m.PublishPosition(0.3, 0.7))
	require.NoError(t, m.PublishPosition(0.5, 0.5))

	got := m.Published()
	require.Len(t, got, 2)
	require.Equal(t, Position{X: 0.3, Y: 0.7}, got[0])
}
