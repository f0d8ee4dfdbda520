package rendiation

// Controller updates a target from the controller's own accumulated state.
// Update only writes a pose derived from that state, so calling it repeatedly
// without new input leaves the target unchanged.
type Controller[T any] interface {
	Update(target T)
}

var (
	_ Controller[*Transform] = &OrbitController{}
	_ Controller[*Transform] = &FpsController{}
)
