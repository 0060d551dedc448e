// Package minecraft is a thin command layer over the game's remote-control
// connection. Each method sends one command and decodes its reply.
package minecraft

import (
	"context"
	"errors"
	"fmt"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/vec3"
)

// ErrNoValue is returned when a reply could not be decoded into the expected
// value.
var ErrNoValue = errors.New("reply has no value")

// PoweredState is the target state for world.setPowered.
type PoweredState int

const (
	PoweredOn PoweredState = iota + 1
	PoweredOff
	PoweredToggle
)

// String returns the wire form of the state.
func (s PoweredState) String() string {
	switch s {
	case PoweredOn:
		return "PoweredState.ON"
	case PoweredOff:
		return "PoweredState.OFF"
	default:
		return "PoweredState.TOGGLE"
	}
}

// Setting keys for world.setting.
const (
	SettingWorldImmutable  = "world_immutable"
	SettingNametagsVisible = "nametags_visible"
)

// Minecraft is the entry point to a running game.
type Minecraft struct {
	conn *connection.Connection

	Camera *Camera
	Player *Player
	Events *Events

	playerName string
}

// New binds the command groups to conn. playerName may be empty, in which
// case the game picks the attached player.
func New(conn *connection.Connection, playerName string) *Minecraft {
	return &Minecraft{
		conn:       conn,
		Camera:     &Camera{conn: conn},
		Player:     newPlayer(conn, playerName),
		Events:     &Events{conn: conn},
		playerName: playerName,
	}
}

// Dial connects with cfg and returns a Minecraft bound to the connection.
func Dial(ctx context.Context, cfg connection.Config, playerName string) (*Minecraft, error) {
	conn, err := connection.Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(conn, playerName), nil
}

// Conn returns the underlying connection.
func (mc *Minecraft) Conn() *connection.Connection {
	return mc.conn
}

// Close closes the connection.
func (mc *Minecraft) Close() error {
	return mc.conn.Close()
}

// GetBlock returns the block at pos.
func (mc *Minecraft) GetBlock(pos vec3.Vec3[int]) (string, error) {
	return mc.conn.SendReceive(CmdWorldGetBlock, pos)
}

// GetBlockWithData returns the block at pos and its data fields.
func (mc *Minecraft) GetBlockWithData(pos vec3.Vec3[int]) ([]string, error) {
	return mc.conn.SendReceiveList(CmdWorldGetBlockWithData, protocol.FieldSeparator, pos)
}

// GetBlocks returns the blocks in the cuboid spanned by from and to.
func (mc *Minecraft) GetBlocks(from, to vec3.Vec3[int]) ([]string, error) {
	return mc.conn.SendReceiveList(CmdWorldGetBlocks, protocol.FieldSeparator, from, to)
}

// SetBlock places block at pos. data carries optional block data values.
func (mc *Minecraft) SetBlock(pos vec3.Vec3[int], block any, data ...any) error {
	_, err := mc.conn.SendReceive(CmdWorldSetBlock, pos, block, data)
	return err
}

// SetBlocks fills the cuboid spanned by from and to with block.
func (mc *Minecraft) SetBlocks(from, to vec3.Vec3[int], block any, data ...any) error {
	_, err := mc.conn.SendReceive(CmdWorldSetBlocks, from, to, block, data)
	return err
}

// IsBlockPassable reports whether the block at pos can be walked through.
func (mc *Minecraft) IsBlockPassable(pos vec3.Vec3[int]) (bool, error) {
	return mc.conn.SendReceiveBool(CmdWorldIsBlockPassable, pos)
}

// SetPowered sets the power state of the block at pos.
func (mc *Minecraft) SetPowered(pos vec3.Vec3[int], state PoweredState) error {
	_, err := mc.conn.SendReceive(CmdWorldSetPowered, pos, state)
	return err
}

// Direction a sign faces.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// SetSign places a sign at pos with up to four lines of text.
func (mc *Minecraft) SetSign(pos vec3.Vec3[int], signType string, facing Direction, lines ...string) error {
	if len(lines) > 4 {
		return fmt.Errorf("sign has %d lines, at most 4 allowed", len(lines))
	}
	_, err := mc.conn.SendReceive(CmdWorldSetSign, pos, signType, int(facing), lines)
	return err
}

// SpawnEntity spawns an entity of typeName at pos.
func (mc *Minecraft) SpawnEntity(pos vec3.Vec3[float64], typeName string, data ...any) (*Entity, error) {
	id, err := mc.conn.SendReceive(CmdWorldSpawnEntity, pos, typeName, data)
	if err != nil {
		return nil, err
	}
	return newEntity(mc.conn, typeName, id), nil
}

// SpawnParticle spawns particle effects at pos.
func (mc *Minecraft) SpawnParticle(pos vec3.Vec3[float64], particle string, data ...any) (string, error) {
	return mc.conn.SendReceive(CmdWorldSpawnParticle, pos, particle, data)
}

// GetNearbyEntities lists the entities around pos.
func (mc *Minecraft) GetNearbyEntities(pos vec3.Vec3[float64], extra ...any) ([]*Entity, error) {
	return connection.ReceiveObjectList(mc.conn, protocol.ListOptions{}, mc.entityParser(),
		CmdWorldGetNearbyEntities, pos, extra)
}

// RemoveEntity removes the entity with the given id.
func (mc *Minecraft) RemoveEntity(entityID string) (string, error) {
	return mc.conn.SendReceive(CmdWorldRemoveEntity, entityID)
}

// GetHeight returns the y of the highest non-air block at (x, z).
func (mc *Minecraft) GetHeight(x, z int) (int, error) {
	h, ok, err := connection.ReceiveScalar(mc.conn, protocol.ParseInt, CmdWorldGetHeight, x, z)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s: %w", CmdWorldGetHeight, ErrNoValue)
	}
	return h, nil
}

// PlayerRef names a connected player.
type PlayerRef struct {
	Name     string
	EntityID string
}

func parsePlayerRef(fields []string) (PlayerRef, error) {
	if err := protocol.ExpectFields(fields, 2); err != nil {
		return PlayerRef{}, err
	}
	return PlayerRef{Name: fields[0], EntityID: fields[1]}, nil
}

// GetPlayers lists the connected players.
func (mc *Minecraft) GetPlayers() ([]PlayerRef, error) {
	return connection.ReceiveObjectList(mc.conn, protocol.ListOptions{}, parsePlayerRef, CmdWorldGetPlayerIDs)
}

// GetPlayerEntityIDs returns the entity ids of the connected players.
func (mc *Minecraft) GetPlayerEntityIDs() ([]string, error) {
	players, err := mc.GetPlayers()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.EntityID
	}
	return ids, nil
}

// GetPlayerNames returns the names of the connected players.
func (mc *Minecraft) GetPlayerNames() ([]string, error) {
	players, err := mc.GetPlayers()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names, nil
}

// GetPlayerEntityID returns the entity id of the named player.
func (mc *Minecraft) GetPlayerEntityID(name string) (string, error) {
	return mc.conn.SendReceive(CmdWorldGetPlayerID, name)
}

// SaveCheckpoint saves a world checkpoint for RestoreCheckpoint.
func (mc *Minecraft) SaveCheckpoint() error {
	_, err := mc.conn.SendReceive(CmdWorldCheckpointSave)
	return err
}

// RestoreCheckpoint restores the last saved checkpoint.
func (mc *Minecraft) RestoreCheckpoint() error {
	_, err := mc.conn.SendReceive(CmdWorldCheckpointRestore)
	return err
}

// PostToChat posts msg to the game chat.
func (mc *Minecraft) PostToChat(msg string) error {
	_, err := mc.conn.SendReceive(CmdChatPost, msg)
	return err
}

// Setting turns a world setting on or off.
func (mc *Minecraft) Setting(key string, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	_, err := mc.conn.SendReceive(CmdWorldSetting, key, v)
	return err
}

// SetPlayer attaches to the named player and reports whether it exists.
func (mc *Minecraft) SetPlayer(name string) (bool, error) {
	ok, err := mc.conn.SendReceiveBool(CmdSetPlayer, name)
	if err != nil {
		return false, err
	}
	if ok {
		mc.playerName = name
	} else {
		mc.playerName = ""
	}
	mc.Player = newPlayer(mc.conn, mc.playerName)
	return ok, nil
}

// PlayerName returns the attached player's name, asking the game when none
// was set locally. ok is false when no player is attached.
func (mc *Minecraft) PlayerName() (name string, ok bool, err error) {
	if mc.playerName != "" {
		return mc.playerName, true, nil
	}
	p, err := mc.conn.SendReceive(CmdGetPlayer)
	if err != nil {
		return "", false, err
	}
	if p == protocol.NoPlayer {
		return "", false, nil
	}
	return p, true, nil
}

// PerformCommand runs command on the server console and reports success.
func (mc *Minecraft) PerformCommand(command string) (bool, error) {
	return mc.conn.SendReceiveBool(CmdConsoleCommand, command)
}

func (mc *Minecraft) entityParser() protocol.RecordParser[*Entity] {
	return func(fields []string) (*Entity, error) {
		if err := protocol.ExpectFields(fields, 2); err != nil {
			return nil, err
		}
		return newEntity(mc.conn, fields[0], fields[1]), nil
	}
}
