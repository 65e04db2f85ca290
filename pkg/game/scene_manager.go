package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// Only the active scene's Update and Draw are called.
//
// Switching from inside a scene's Update is allowed: the new scene receives its first
// Update on the next frame, so a scene never runs after it handed control away.
type SceneManager struct {
	currentScene Scene
	switched     bool
	logger       *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		logger: log.WithPrefix("SceneManager"),
	}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.logger.Debug("switching scene", "scene", fmt.Sprintf("%T", scene))
	sm.currentScene = scene
	sm.switched = true
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.switched = false
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Switched reports whether the active scene changed during the last Update.
func (sm *SceneManager) Switched() bool {
	return sm.switched
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
