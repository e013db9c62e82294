package engine

import "sync"

// ApplicationEngine is a bootable unit of the application. Initialize
// marks the wait group done once the engine is ready to serve.
type ApplicationEngine interface {
	Initialize(waitGroup *sync.WaitGroup)
}
