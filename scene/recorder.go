package scene

import (
	"github.com/mosure/octree-glass/types"
)

// Box is a recorded cube-creation request.
type Box struct {
	ID     GeometryID
	Center types.Vec3
	Edge   float32
}

// GlassMaterial is a recorded material-creation request.
type GlassMaterial struct {
	ID        MaterialID
	Color     types.Vec4
	Roughness float32
	IOR       float32
}

// SunLight is a recorded directional-light request.
type SunLight struct {
	ID        LightID
	Position  types.Vec3
	Direction types.Vec3
	Intensity float32
}

// Keyframe is one recorded camera position sample.
type Keyframe struct {
	Frame    int
	Position types.Vec3
}

// Camera is a recorded camera with its tracking target and animation.
type Camera struct {
	ID        CameraID
	Position  types.Vec3
	Target    types.Vec3
	Tracking  bool
	Keyframes []Keyframe
}

// Recorder is an in-memory Authoring implementation. It assigns opaque
// handles and keeps every request in creation order, which makes it both
// the CLI's scene sink and the reference collaborator for tests. Handles
// are never reused, even across DeleteAllGenerated.
//
// Not safe for concurrent use; the generator drives it from one goroutine.
type Recorder struct {
	next uint32

	Boxes     []Box
	Materials []GlassMaterial
	Lights    []SunLight
	Cameras   []Camera

	// Material assignment per geometry.
	Attachments map[GeometryID]MaterialID

	AssemblyPitch   float32
	AssemblyYaw     float32
	AssemblyRotated bool

	geomIndex map[GeometryID]int
	matIndex  map[MaterialID]int
	camIndex  map[CameraID]int
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.reset()
	return r
}

func (r *Recorder) reset() {
	r.Boxes = nil
	r.Materials = nil
	r.Lights = nil
	r.Cameras = nil
	r.Attachments = make(map[GeometryID]MaterialID)
	r.geomIndex = make(map[GeometryID]int)
	r.matIndex = make(map[MaterialID]int)
	r.camIndex = make(map[CameraID]int)
	r.AssemblyPitch = 0
	r.AssemblyYaw = 0
	r.AssemblyRotated = false
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) CreateBox(center types.Vec3, edge float32) (GeometryID, error) {
	id := GeometryID(r.handle())
	r.geomIndex[id] = len(r.Boxes)
	r.Boxes = append(r.Boxes, Box{ID: id, Center: center, Edge: edge})
	return id, nil
}

func (r *Recorder) CreateGlassMaterial(color types.Vec4, roughness, ior float32) (MaterialID, error) {
	id := MaterialID(r.handle())
	r.matIndex[id] = len(r.Materials)
	r.Materials = append(r.Materials, GlassMaterial{ID: id, Color: color, Roughness: roughness, IOR: ior})
	return id, nil
}

func (r *Recorder) AttachMaterial(geom GeometryID, mat MaterialID) error {
	if _, exists := r.geomIndex[geom]; !exists {
		return ErrUnknownGeometry
	}
	if _, exists := r.matIndex[mat]; !exists {
		return ErrUnknownMaterial
	}
	r.Attachments[geom] = mat
	return nil
}

func (r *Recorder) CreateSunLight(position, direction types.Vec3, intensity float32) (LightID, error) {
	id := LightID(r.handle())
	r.Lights = append(r.Lights, SunLight{ID: id, Position: position, Direction: direction, Intensity: intensity})
	return id, nil
}

func (r *Recorder) CreateCamera(position types.Vec3) (CameraID, error) {
	id := CameraID(r.handle())
	r.camIndex[id] = len(r.Cameras)
	r.Cameras = append(r.Cameras, Camera{ID: id, Position: position})
	return id, nil
}

func (r *Recorder) SetLookAt(cam CameraID, target types.Vec3) error {
	idx, exists := r.camIndex[cam]
	if !exists {
		return ErrUnknownCamera
	}
	r.Cameras[idx].Target = target
	r.Cameras[idx].Tracking = true
	return nil
}

func (r *Recorder) SetKeyframe(cam CameraID, frame int, position types.Vec3) error {
	idx, exists := r.camIndex[cam]
	if !exists {
		return ErrUnknownCamera
	}
	r.Cameras[idx].Keyframes = append(r.Cameras[idx].Keyframes, Keyframe{Frame: frame, Position: position})
	return nil
}

func (r *Recorder) RotateAssembly(pitch, yaw float32) error {
	r.AssemblyPitch = pitch
	r.AssemblyYaw = yaw
	r.AssemblyRotated = true
	return nil
}

func (r *Recorder) DeleteAllGenerated() error {
	r.reset()
	return nil
}

// MaterialFor resolves the material attached to a geometry, if any.
func (r *Recorder) MaterialFor(geom GeometryID) (GlassMaterial, bool) {
	mat, attached := r.Attachments[geom]
	if !attached {
		return GlassMaterial{}, false
	}
	idx, exists := r.matIndex[mat]
	if !exists {
		return GlassMaterial{}, false
	}
	return r.Materials[idx], true
}
