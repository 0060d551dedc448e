package minecraft

// Command names understood by the game.
const (
	CmdWorldGetBlock          = "world.getBlock"
	CmdWorldGetBlockWithData  = "world.getBlockWithData"
	CmdWorldGetBlocks         = "world.getBlocks"
	CmdWorldSetBlock          = "world.setBlock"
	CmdWorldSetBlocks         = "world.setBlocks"
	CmdWorldIsBlockPassable   = "world.isBlockPassable"
	CmdWorldSetPowered        = "world.setPowered"
	CmdWorldSetSign           = "world.setSign"
	CmdWorldSpawnEntity       = "world.spawnEntity"
	CmdWorldSpawnParticle     = "world.spawnParticle"
	CmdWorldGetNearbyEntities = "world.getNearbyEntities"
	CmdWorldRemoveEntity      = "world.removeEntity"
	CmdWorldGetHeight         = "world.getHeight"
	CmdWorldGetPlayerIDs      = "world.getPlayerIds"
	CmdWorldGetPlayerID       = "world.getPlayerId"
	CmdWorldCheckpointSave    = "world.checkpoint.save"
	CmdWorldCheckpointRestore = "world.checkpoint.restore"
	CmdWorldSetting           = "world.setting"

	CmdChatPost       = "chat.post"
	CmdSetPlayer      = "setPlayer"
	CmdGetPlayer      = "getPlayer"
	CmdConsoleCommand = "console.performCommand"

	CmdCameraSetNormal = "camera.mode.setNormal"
	CmdCameraSetFixed  = "camera.mode.setFixed"
	CmdCameraSetFollow = "camera.mode.setFollow"
	CmdCameraSetPos    = "camera.setPos"

	CmdEventsClear          = "events.clear"
	CmdEventsBlockHits      = "events.block.hits"
	CmdEventsChatPosts      = "events.chat.posts"
	CmdEventsProjectileHits = "events.projectile.hits"
	CmdEntityGetName        = "entity.getName"
	CmdEntityRemove         = "entity.remove"
	CmdPlayerPerformCommand = "player.performCommand"
	CmdEntityEnableControl  = "entity.enableControl"
	CmdEntityDisableControl = "entity.disableControl"
	CmdEntityWalkTo         = "entity.walkTo"
)

// Positioner command suffixes, prefixed with "entity" or "player".
const (
	suffixGetPos       = ".getPos"
	suffixSetPos       = ".setPos"
	suffixGetTile      = ".getTile"
	suffixSetTile      = ".setTile"
	suffixGetDirection = ".getDirection"
	suffixSetDirection = ".setDirection"
	suffixGetRotation  = ".getRotation"
	suffixSetRotation  = ".setRotation"
	suffixGetPitch     = ".getPitch"
	suffixSetPitch     = ".setPitch"
)

// Commands lists every command name the package sends, for completion and
// validation in front ends.
func Commands() []string {
	cmds := []string{
		CmdWorldGetBlock, CmdWorldGetBlockWithData, CmdWorldGetBlocks,
		CmdWorldSetBlock, CmdWorldSetBlocks, CmdWorldIsBlockPassable,
		CmdWorldSetPowered, CmdWorldSetSign, CmdWorldSpawnEntity,
		CmdWorldSpawnParticle, CmdWorldGetNearbyEntities, CmdWorldRemoveEntity,
		CmdWorldGetHeight, CmdWorldGetPlayerIDs, CmdWorldGetPlayerID,
		CmdWorldCheckpointSave, CmdWorldCheckpointRestore, CmdWorldSetting,
		CmdChatPost, CmdSetPlayer, CmdGetPlayer, CmdConsoleCommand,
		CmdCameraSetNormal, CmdCameraSetFixed, CmdCameraSetFollow, CmdCameraSetPos,
		CmdEventsClear, CmdEventsBlockHits, CmdEventsChatPosts, CmdEventsProjectileHits,
		CmdEntityGetName, CmdEntityRemove, CmdEntityEnableControl,
		CmdEntityDisableControl, CmdEntityWalkTo, CmdPlayerPerformCommand,
	}
	for _, pkg := range []string{"entity", "player"} {
		for _, suffix := range []string{
			suffixGetPos, suffixSetPos, suffixGetTile, suffixSetTile,
			suffixGetDirection, suffixSetDirection, suffixGetRotation,
			suffixSetRotation, suffixGetPitch, suffixSetPitch,
		} {
			cmds = append(cmds, pkg+suffix)
		}
	}
	return cmds
}
