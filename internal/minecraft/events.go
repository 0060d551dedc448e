package minecraft

import (
	"fmt"
	"strconv"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/vec3"
)

// EventType distinguishes events within one family.
type EventType int

// Hit and Post are the only event types the game reports.
const (
	Hit  EventType = 0
	Post EventType = 0
)

// BlockEvent is a block struck with a sword.
type BlockEvent struct {
	Type     EventType
	Pos      vec3.Vec3[int]
	Face     string
	EntityID string
}

func (e BlockEvent) String() string {
	return fmt.Sprintf("BlockEvent(%s, %d, %d, %d, %s, %s)",
		typeName("BlockEvent.HIT", e.Type), e.Pos.X, e.Pos.Y, e.Pos.Z, e.Face, e.EntityID)
}

// ParseBlockHit builds a BlockEvent from x,y,z,face,entityId.
func ParseBlockHit(fields []string) (BlockEvent, error) {
	if err := protocol.ExpectFields(fields, 5); err != nil {
		return BlockEvent{}, err
	}
	pos, err := parseTile(fields[:3])
	if err != nil {
		return BlockEvent{}, err
	}
	return BlockEvent{Type: Hit, Pos: pos, Face: fields[3], EntityID: fields[4]}, nil
}

// ChatEvent is a message posted to chat.
type ChatEvent struct {
	Type     EventType
	Name     string
	EntityID string
	Message  string
}

func (e ChatEvent) String() string {
	return fmt.Sprintf("ChatEvent(%s, %s:%s, %s)",
		typeName("ChatEvent.POST", e.Type), e.Name, e.EntityID, e.Message)
}

// ParseChatPost builds a ChatEvent from name,entityId,message. The message
// may itself contain commas.
func ParseChatPost(fields []string) (ChatEvent, error) {
	if err := protocol.ExpectFields(fields, 3); err != nil {
		return ChatEvent{}, err
	}
	return ChatEvent{Type: Post, Name: fields[0], EntityID: fields[1], Message: fields[2]}, nil
}

// ProjectileEvent is a block or entity hit by a projectile.
type ProjectileEvent struct {
	Type        EventType
	Pos         vec3.Vec3[int]
	Face        string
	ShooterName string
	VictimName  string
}

func (e ProjectileEvent) String() string {
	return fmt.Sprintf("ProjectileEvent(%s, %d, %d, %d, %s, %s)",
		typeName("ProjectileEvent.HIT", e.Type), e.Pos.X, e.Pos.Y, e.Pos.Z, e.ShooterName, e.VictimName)
}

// ParseProjectileHit builds a ProjectileEvent from
// x,y,z,face,shooterName,victimName.
func ParseProjectileHit(fields []string) (ProjectileEvent, error) {
	if err := protocol.ExpectFields(fields, 6); err != nil {
		return ProjectileEvent{}, err
	}
	pos, err := parseTile(fields[:3])
	if err != nil {
		return ProjectileEvent{}, err
	}
	return ProjectileEvent{
		Type:        Hit,
		Pos:         pos,
		Face:        fields[3],
		ShooterName: fields[4],
		VictimName:  fields[5],
	}, nil
}

func parseTile(fields []string) (vec3.Vec3[int], error) {
	var c [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return vec3.Vec3[int]{}, err
		}
		c[i] = n
	}
	return vec3.Of(c[0], c[1], c[2]), nil
}

func typeName(name string, t EventType) string {
	if t == 0 {
		return name
	}
	return "???"
}

// Events polls the game's event queues. Each poll returns and clears the
// events recorded since the previous poll.
type Events struct {
	conn *connection.Connection
}

// ClearAll discards every pending event.
func (e *Events) ClearAll() error {
	_, err := e.conn.SendReceive(CmdEventsClear)
	return err
}

// PollBlockHits returns block hits made with a sword.
func (e *Events) PollBlockHits() ([]BlockEvent, error) {
	return connection.ReceiveObjectList(e.conn, protocol.ListOptions{}, ParseBlockHit, CmdEventsBlockHits)
}

// PollChatPosts returns chat messages.
func (e *Events) PollChatPosts() ([]ChatEvent, error) {
	return connection.ReceiveObjectList(e.conn, protocol.ListOptions{MaxSplits: 2}, ParseChatPost, CmdEventsChatPosts)
}

// PollProjectileHits returns projectile hits.
func (e *Events) PollProjectileHits() ([]ProjectileEvent, error) {
	return connection.ReceiveObjectList(e.conn, protocol.ListOptions{}, ParseProjectileHit, CmdEventsProjectileHits)
}
