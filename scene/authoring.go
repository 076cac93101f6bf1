package scene

import (
	"github.com/mosure/octree-glass/types"
)

// Opaque handles for assets created through the Authoring interface. The
// generator tracks ownership through these instead of host-side names, so
// repeated runs cannot collide with unrelated scene content.
type (
	GeometryID uint32
	MaterialID uint32
	LightID    uint32
	CameraID   uint32
)

// Authoring is the capability surface the generator needs from a host
// scene-authoring environment. The core calls it synchronously from a
// single goroutine; implementations are not required to be safe for
// concurrent use.
type Authoring interface {
	// CreateBox adds a cube primitive with the given edge length,
	// centered at center.
	CreateBox(center types.Vec3, edge float32) (GeometryID, error)

	// CreateGlassMaterial adds a glass material with the given RGBA
	// color, roughness and index of refraction.
	CreateGlassMaterial(color types.Vec4, roughness, ior float32) (MaterialID, error)

	// AttachMaterial assigns a previously created material to a
	// previously created geometry.
	AttachMaterial(geom GeometryID, mat MaterialID) error

	// CreateSunLight adds a directional light at position, emitting
	// along direction with the given intensity.
	CreateSunLight(position, direction types.Vec3, intensity float32) (LightID, error)

	// CreateCamera adds a camera at position.
	CreateCamera(position types.Vec3) (CameraID, error)

	// SetLookAt constrains the camera to track target regardless of its
	// animated position.
	SetLookAt(cam CameraID, target types.Vec3) error

	// SetKeyframe records the camera position at a frame; the host
	// interpolates between keyframes.
	SetKeyframe(cam CameraID, frame int, position types.Vec3) error

	// RotateAssembly tilts the whole generated assembly by the given
	// euler angles (radians) around the X and Y axes.
	RotateAssembly(pitch, yaw float32) error

	// DeleteAllGenerated removes every asset previously created through
	// this interface. Idempotent; safe to call when nothing exists.
	DeleteAllGenerated() error
}
