package minecraft

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/vec3"
)

// fakeGame answers requests by command name and records every request line.
type fakeGame struct {
	mu       sync.Mutex
	replies  map[string]string
	requests []string
}

func (g *fakeGame) reply(req string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.requests = append(g.requests, req)
	name, _, _ := strings.Cut(req, "(")
	if r, ok := g.replies[name]; ok {
		return r
	}
	return ""
}

func (g *fakeGame) last() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return ""
	}
	return g.requests[len(g.requests)-1]
}

func newTestGame(t *testing.T, replies map[string]string) (*Minecraft, *fakeGame) {
	t.Helper()

	game := &fakeGame{replies: replies}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		for {
			req, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if _, err := conn.Write([]byte(game.reply(strings.TrimSuffix(req, "\n")) + "\n")); err != nil {
				return
			}
		}
	}()

	mc, err := Dial(context.Background(), connection.Config{
		Host:        "127.0.0.1",
		Port:        listener.Addr().(*net.TCPAddr).Port,
		ReadTimeout: 2 * time.Second,
	}, "steve")
	require.NoError(t, err)
	t.Cleanup(func() { mc.Close() })
	return mc, game
}

func TestWorldCommands(t *testing.T) {
	mc, game := newTestGame(t, map[string]string{
		CmdWorldGetBlock:         "STONE",
		CmdWorldGetBlockWithData: "STONE,1",
		CmdWorldGetBlocks:        "1,1,0,0",
		CmdWorldIsBlockPassable:  "true",
		CmdWorldGetHeight:        "72",
		CmdWorldSpawnEntity:      "1234",
	})

	block, err := mc.GetBlock(vec3.Of(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "STONE", block)
	assert.Equal(t, "world.getBlock(1,2,3)", game.last())

	data, err := mc.GetBlockWithData(vec3.Of(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"STONE", "1"}, data)

	blocks, err := mc.GetBlocks(vec3.Of(0, 0, 0), vec3.Of(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "0", "0"}, blocks)
	assert.Equal(t, "world.getBlocks(0,0,0,1,1,1)", game.last())

	require.NoError(t, mc.SetBlock(vec3.Of(1, 2, 3), "STONE"))
	assert.Equal(t, "world.setBlock(1,2,3,STONE)", game.last())

	require.NoError(t, mc.SetBlock(vec3.Of(1, 2, 3), 35, 14))
	assert.Equal(t, "world.setBlock(1,2,3,35,14)", game.last())

	require.NoError(t, mc.SetBlocks(vec3.Of(0, 0, 0), vec3.Of(2, 2, 2), "AIR"))
	assert.Equal(t, "world.setBlocks(0,0,0,2,2,2,AIR)", game.last())

	passable, err := mc.IsBlockPassable(vec3.Of(0, 64, 0))
	require.NoError(t, err)
	assert.True(t, passable)

	require.NoError(t, mc.SetPowered(vec3.Of(4, 5, 6), PoweredToggle))
	assert.Equal(t, "world.setPowered(4,5,6,PoweredState.TOGGLE)", game.last())

	require.NoError(t, mc.SetSign(vec3.Of(1, 2, 3), "OAK_SIGN", East, "hello", "world"))
	assert.Equal(t, "world.setSign(1,2,3,OAK_SIGN,1,hello,world)", game.last())
	assert.Error(t, mc.SetSign(vec3.Of(1, 2, 3), "OAK_SIGN", East, "1", "2", "3", "4", "5"))

	h, err := mc.GetHeight(10, -4)
	require.NoError(t, err)
	assert.Equal(t, 72, h)
	assert.Equal(t, "world.getHeight(10,-4)", game.last())

	e, err := mc.SpawnEntity(vec3.Of(0.5, 64, 0.5), "PIG")
	require.NoError(t, err)
	assert.Equal(t, "PIG", e.Type)
	assert.Equal(t, "1234", e.ID())
	assert.Equal(t, "world.spawnEntity(0.5,64,0.5,PIG)", game.last())

	require.NoError(t, mc.Setting(SettingWorldImmutable, true))
	assert.Equal(t, "world.setting(world_immutable,1)", game.last())

	require.NoError(t, mc.PostToChat("hi, all"))
	assert.Equal(t, "chat.post(hi, all)", game.last())

	require.NoError(t, mc.SaveCheckpoint())
	assert.Equal(t, "world.checkpoint.save()", game.last())
}

func TestGetHeight_Malformed(t *testing.T) {
	mc, _ := newTestGame(t, map[string]string{CmdWorldGetHeight: "high"})

	_, err := mc.GetHeight(0, 0)

	assert.ErrorIs(t, err, ErrNoValue)
}

func TestPlayers(t *testing.T) {
	mc, _ := newTestGame(t, map[string]string{
		CmdWorldGetPlayerIDs: "steve,1|alex,2",
	})

	names, err := mc.GetPlayerNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"steve", "alex"}, names)

	ids, err := mc.GetPlayerEntityIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestGetNearbyEntities(t *testing.T) {
	mc, game := newTestGame(t, map[string]string{
		CmdWorldGetNearbyEntities: "PIG,10|COW,11",
		CmdEntityGetName:          "Pig",
	})

	entities, err := mc.GetNearbyEntities(vec3.Of(0.0, 64, 0))
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "PIG", entities[0].Type)
	assert.Equal(t, "11", entities[1].ID())

	name, err := entities[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "Pig", name)
	assert.Equal(t, "entity.getName(10)", game.last())
}

func TestPlayerPositioner(t *testing.T) {
	mc, game := newTestGame(t, map[string]string{
		"player.getPos":      "1.5,64.0,-2.5",
		"player.getTile":     "1,64,-3",
		"player.getRotation": "90",
		"player.getPitch":    "nope",
	})

	pos, err := mc.Player.Pos()
	require.NoError(t, err)
	assert.Equal(t, vec3.Of(1.5, 64, -2.5), pos)
	assert.Equal(t, "player.getPos(steve)", game.last())

	tile, err := mc.Player.TilePos()
	require.NoError(t, err)
	assert.Equal(t, vec3.Of(1, 64, -3), tile)

	require.NoError(t, mc.Player.SetTilePos(tile.Add(vec3.Of(0, 1, 0))))
	assert.Equal(t, "player.setTile(steve,1,65,-3)", game.last())

	rot, err := mc.Player.Rotation()
	require.NoError(t, err)
	assert.Equal(t, 90.0, rot)

	_, err = mc.Player.Pitch()
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestSetPlayer(t *testing.T) {
	t.Run("known player", func(t *testing.T) {
		mc, game := newTestGame(t, map[string]string{CmdSetPlayer: "true"})

		ok, err := mc.SetPlayer("alex")
		require.NoError(t, err)
		assert.True(t, ok)

		name, ok, err := mc.PlayerName()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "alex", name)

		_, _ = mc.Player.Pos()
		assert.Equal(t, "player.getPos(alex)", game.last())
	})

	t.Run("unknown player falls back to the game", func(t *testing.T) {
		mc, game := newTestGame(t, map[string]string{CmdSetPlayer: "false", CmdGetPlayer: "(none)"})

		ok, err := mc.SetPlayer("ghost")
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = mc.PlayerName()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "getPlayer()", game.last())

		_, _ = mc.Player.Pos()
		assert.Equal(t, "player.getPos()", game.last())
	})
}

func TestRequestFailedPropagates(t *testing.T) {
	mc, _ := newTestGame(t, map[string]string{CmdWorldSetBlock: "Fail"})

	err := mc.SetBlock(vec3.Of(0, 0, 0), "BEDROCK")

	require.Error(t, err)
	assert.True(t, connection.IsRequestFailed(err))
	assert.Contains(t, err.Error(), "world.setBlock(0,0,0,BEDROCK)")
}

func TestCamera(t *testing.T) {
	mc, game := newTestGame(t, nil)

	require.NoError(t, mc.Camera.SetFollow())
	assert.Equal(t, "camera.mode.setFollow()", game.last())

	require.NoError(t, mc.Camera.SetNormal("42"))
	assert.Equal(t, "camera.mode.setNormal(42)", game.last())

	require.NoError(t, mc.Camera.SetPos(vec3.Of(1.0, 2, 3)))
	assert.Equal(t, "camera.setPos(1,2,3)", game.last())
}

func TestCommands(t *testing.T) {
	cmds := Commands()

	assert.Contains(t, cmds, CmdChatPost)
	assert.Contains(t, cmds, "player.getPos")
	assert.Contains(t, cmds, "entity.setPitch")

	seen := make(map[string]bool)
	for _, c := range cmds {
		assert.False(t, seen[c], "duplicate command %s", c)
		seen[c] = true
	}
}
