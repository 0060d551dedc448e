package minecraft

import (
	"fmt"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/vec3"
)

// Positioner holds the position commands shared by players and entities.
// Commands are sent as pkg+suffix with the target id as first argument.
type Positioner struct {
	conn *connection.Connection
	pkg  string
	id   any
}

// ID returns the target's id as sent on the wire.
func (p *Positioner) ID() any {
	return p.id
}

// Name returns the target's display name.
func (p *Positioner) Name() (string, error) {
	return p.conn.SendReceive(CmdEntityGetName, p.id)
}

// Pos returns the exact position.
func (p *Positioner) Pos() (vec3.Vec3[float64], error) {
	return receiveVec3(p.conn, protocol.ParseFloat, p.pkg+suffixGetPos, p.id)
}

// SetPos moves the target to pos.
func (p *Positioner) SetPos(pos vec3.Vec3[float64]) error {
	_, err := p.conn.SendReceive(p.pkg+suffixSetPos, p.id, pos)
	return err
}

// TilePos returns the block the target stands on.
func (p *Positioner) TilePos() (vec3.Vec3[int], error) {
	return receiveVec3(p.conn, protocol.ParseInt, p.pkg+suffixGetTile, p.id)
}

// SetTilePos moves the target onto the block at pos.
func (p *Positioner) SetTilePos(pos vec3.Vec3[int]) error {
	_, err := p.conn.SendReceive(p.pkg+suffixSetTile, p.id, pos)
	return err
}

// Direction returns the unit vector the target is looking along.
func (p *Positioner) Direction() (vec3.Vec3[float64], error) {
	return receiveVec3(p.conn, protocol.ParseFloat, p.pkg+suffixGetDirection, p.id)
}

// SetDirection turns the target to look along dir.
func (p *Positioner) SetDirection(dir vec3.Vec3[float64]) error {
	_, err := p.conn.SendReceive(p.pkg+suffixSetDirection, p.id, dir)
	return err
}

// Rotation returns the yaw in degrees.
func (p *Positioner) Rotation() (float64, error) {
	return receiveFloat(p.conn, p.pkg+suffixGetRotation, p.id)
}

// SetRotation sets the yaw in degrees.
func (p *Positioner) SetRotation(yaw float64) error {
	_, err := p.conn.SendReceive(p.pkg+suffixSetRotation, p.id, yaw)
	return err
}

// Pitch returns the pitch in degrees.
func (p *Positioner) Pitch() (float64, error) {
	return receiveFloat(p.conn, p.pkg+suffixGetPitch, p.id)
}

// SetPitch sets the pitch in degrees.
func (p *Positioner) SetPitch(pitch float64) error {
	_, err := p.conn.SendReceive(p.pkg+suffixSetPitch, p.id, pitch)
	return err
}

// Player is a connected player.
type Player struct {
	Positioner
}

func newPlayer(conn *connection.Connection, name string) *Player {
	// An unnamed player is sent as an empty field so the game uses the
	// attached player.
	var id any
	if name != "" {
		id = name
	}
	return &Player{Positioner{conn: conn, pkg: "player", id: id}}
}

// PerformCommand runs command as the player and reports success.
func (p *Player) PerformCommand(command string) (bool, error) {
	return p.conn.SendReceiveBool(CmdPlayerPerformCommand, command)
}

// Entity is a spawned or discovered entity.
type Entity struct {
	Positioner
	Type string
}

func newEntity(conn *connection.Connection, typeName, id string) *Entity {
	return &Entity{Positioner: Positioner{conn: conn, pkg: "entity", id: id}, Type: typeName}
}

func (e *Entity) String() string {
	return fmt.Sprintf("Entity(%s, %v)", e.Type, e.id)
}

// EnableControl lets scripts steer the entity.
func (e *Entity) EnableControl() error {
	_, err := e.conn.SendReceive(CmdEntityEnableControl, e.id)
	return err
}

// DisableControl hands the entity back to the game.
func (e *Entity) DisableControl() error {
	_, err := e.conn.SendReceive(CmdEntityDisableControl, e.id)
	return err
}

// WalkTo makes the entity walk to pos.
func (e *Entity) WalkTo(pos vec3.Vec3[float64]) error {
	_, err := e.conn.SendReceive(CmdEntityWalkTo, e.id, pos)
	return err
}

// Remove despawns the entity.
func (e *Entity) Remove() error {
	_, err := e.conn.SendReceive(CmdEntityRemove, e.id)
	return err
}

func receiveVec3[T vec3.Number](conn *connection.Connection, parse protocol.ParseFunc[T], command string, args ...any) (vec3.Vec3[T], error) {
	v, ok, err := connection.ReceiveVec3(conn, parse, command, args...)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("%s: %w", command, ErrNoValue)
	}
	return v, nil
}

func receiveFloat(conn *connection.Connection, command string, args ...any) (float64, error) {
	v, ok, err := connection.ReceiveScalar(conn, protocol.ParseFloat, command, args...)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s: %w", command, ErrNoValue)
	}
	return v, nil
}
