package websocket

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	wrote      []interface{}
	failWrites bool
	closed     bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	if f.failWrites {
		return errors.New("broken pipe")
	}
	f.wrote = append(f.wrote, v)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func resetClients() {
	clientsMu.Lock()
	clients = make(map[uuid.UUID]threadConn)
	clientsMu.Unlock()
}

func TestBroadcastSkipsSender(t *testing.T) {
	resetClients()
	defer resetClients()

	sender, recipient := uuid.New(), uuid.New()
	senderConn, recipientConn := &fakeConn{}, &fakeConn{}
	clientsMu.Lock()
	clients[sender] = senderConn
	clients[recipient] = recipientConn
	clientsMu.Unlock()

	broadcastTo([]uuid.UUID{sender, recipient}, sender, "hello")

	assert.Empty(t, senderConn.wrote)
	assert.Len(t, recipientConn.wrote, 1)
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	resetClients()
	defer resetClients()

	sender, good, dead := uuid.New(), uuid.New(), uuid.New()
	goodConn := &fakeConn{}
	deadConn := &fakeConn{failWrites: true}
	clientsMu.Lock()
	clients[good] = goodConn
	clients[dead] = deadConn
	clientsMu.Unlock()

	broadcastTo([]uuid.UUID{good, dead}, sender, "first")

	assert.Len(t, goodConn.wrote, 1)
	assert.True(t, deadConn.closed)

	clientsMu.RLock()
	_, goodStillThere := clients[good]
	_, deadStillThere := clients[dead]
	clientsMu.RUnlock()
	assert.True(t, goodStillThere)
	assert.False(t, deadStillThere)

	// A second broadcast no longer touches the dead connection.
	broadcastTo([]uuid.UUID{good, dead}, sender, "second")
	assert.Len(t, goodConn.wrote, 2)
	assert.Len(t, deadConn.wrote, 0)
}
