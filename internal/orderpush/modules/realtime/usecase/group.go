package usecase

import (
	"fmt"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/logger"
	"go.uber.org/zap/zapcore"
)

// group set of connection, used for order room and staff group
type group struct {
	name    string
	members map[string]*Connection
}

func newGroup(name string) *group {
	return &group{name: name, members: make(map[string]*Connection)}
}

func (g *group) add(c *Connection) bool {
	if _, ok := g.members[c.id]; ok {
		return false
	}
	g.members[c.id] = c
	return true
}

func (g *group) remove(id string) {
	delete(g.members, id)
}

func (g *group) len() int {
	return len(g.members)
}

func (g *group) deliver(msg domain.Message) (delivered int) {
	for _, c := range g.members {
		dropped, ok := c.enqueue(msg)
		if dropped > 0 {
			logger.Log(zapcore.WarnLevel,
				fmt.Sprintf("%s: outbound buffer full, dropped %d message", candishared.ErrDeliveryFailure, dropped),
				"realtime:"+g.name, c.id)
		}
		if ok {
			delivered++
		}
	}
	return delivered
}
