package systems

import "github.com/lixenwraith/twin-shooter/engine"

// RegisterDefaults adds the standard tick pipeline to g:
// fire requests, enemy spawn, player movement, (frame capture), bullets, enemies.
func RegisterDefaults(g *engine.Game) {
	g.AddSystem(NewFireSystem())
	g.AddSystem(NewSpawnSystem())
	g.AddSystem(NewPlayerSystem())
	g.AddSystem(NewBulletSystem())
	g.AddSystem(NewEnemySystem())
}
