package scene

// Drawable is an object the scene can render. Init creates GPU resources
// and runs once before the first Draw; Destroy releases them.
type Drawable interface {
	Init() error
	Tick()
	Draw(cam *Camera) error
	Destroy()
}
