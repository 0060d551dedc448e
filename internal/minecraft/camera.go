package minecraft

import (
	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/vec3"
)

// Camera controls the player's view.
type Camera struct {
	conn *connection.Connection
}

// SetNormal switches to the normal first-person view, optionally of the
// given entity.
func (c *Camera) SetNormal(entityID ...string) error {
	_, err := c.conn.SendReceive(CmdCameraSetNormal, entityID)
	return err
}

// SetFixed switches to a fixed view.
func (c *Camera) SetFixed() error {
	_, err := c.conn.SendReceive(CmdCameraSetFixed)
	return err
}

// SetFollow makes the camera follow an entity, or the player when none is
// given.
func (c *Camera) SetFollow(entityID ...string) error {
	_, err := c.conn.SendReceive(CmdCameraSetFollow, entityID)
	return err
}

// SetPos places the camera at pos.
func (c *Camera) SetPos(pos vec3.Vec3[float64]) error {
	_, err := c.conn.SendReceive(CmdCameraSetPos, pos)
	return err
}
