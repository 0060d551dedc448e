package connection

import (
	"strconv"
	"testing"

	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedReplies answers each command with a canned payload.
func fixedReplies(replies map[string]string) replyFunc {
	return func(req string) (string, bool) {
		for cmd, reply := range replies {
			if len(req) > len(cmd) && req[:len(cmd)] == cmd && req[len(cmd)] == '(' {
				return line(reply)
			}
		}
		return line("Fail")
	}
}

func TestSendReceiveBool(t *testing.T) {
	tests := []struct {
		reply string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.reply), func(t *testing.T) {
			cfg, _ := testServer(t, func(string) (string, bool) { return line(tt.reply) })
			c := dialTest(t, cfg)

			got, err := c.SendReceiveBool("any.command", 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendReceiveList(t *testing.T) {
	cfg, _ := testServer(t, fixedReplies(map[string]string{
		"pipes":  "a|b|c",
		"commas": "1,2,3",
		"empty":  "",
	}))
	c := dialTest(t, cfg)

	got, err := c.SendReceiveList("pipes", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got, err = c.SendReceiveList("commas", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	got, err = c.SendReceiveList("empty", "")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	_, err = c.SendReceiveList("unknown", "")
	assert.True(t, IsRequestFailed(err))
}

func TestReceiveScalar(t *testing.T) {
	cfg, _ := testServer(t, fixedReplies(map[string]string{
		"height":   "64",
		"rotation": "90.5",
		"broken":   "NaN?",
	}))
	c := dialTest(t, cfg)

	h, ok, err := ReceiveScalar(c, protocol.ParseInt, "height", 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 64, h)

	r, ok, err := ReceiveScalar(c, protocol.ParseFloat, "rotation", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 90.5, r)

	_, ok, err = ReceiveScalar(c, protocol.ParseFloat, "broken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReceiveVec3(t *testing.T) {
	cfg, _ := testServer(t, fixedReplies(map[string]string{
		"pos":  "1.5,64.0,-2.25",
		"tile": "1,64,-3",
		"bad":  "1.0,2.0,bad",
	}))
	c := dialTest(t, cfg)

	pos, ok, err := ReceiveVec3(c, protocol.ParseFloat, "pos", "steve")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vec3.Of(1.5, 64, -2.25), pos)

	tile, ok, err := ReceiveVec3(c, protocol.ParseInt, "tile", "steve")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vec3.Of(1, 64, -3), tile)

	_, ok, err = ReceiveVec3(c, protocol.ParseFloat, "bad")
	require.NoError(t, err)
	assert.False(t, ok)
}

type point struct{ X, Y int }

func parsePoint(fields []string) (point, error) {
	if err := protocol.ExpectFields(fields, 2); err != nil {
		return point{}, err
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return point{}, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return point{}, err
	}
	return point{X: x, Y: y}, nil
}

func TestReceiveObjectList(t *testing.T) {
	cfg, _ := testServer(t, fixedReplies(map[string]string{
		"points": "10,20|30,40",
		"none":   "",
		"junk":   "10,20|x,y",
	}))
	c := dialTest(t, cfg)

	got, err := ReceiveObjectList(c, protocol.ListOptions{}, parsePoint, "points")
	require.NoError(t, err)
	assert.Equal(t, []point{{10, 20}, {30, 40}}, got)

	got, err = ReceiveObjectList(c, protocol.ListOptions{}, parsePoint, "none")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ReceiveObjectList(c, protocol.ListOptions{}, parsePoint, "junk")
	require.Error(t, err)
	assert.True(t, protocol.IsDecodeError(err))
	// A decode problem is not a transport problem.
	assert.NoError(t, c.Err())
}
