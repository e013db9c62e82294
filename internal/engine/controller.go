package engine

import (
	"fmt"
	"sync"
)

// Controller boots every registered engine concurrently and waits for
// all of them before declaring the application started.
type Controller struct {
	engines                        []ApplicationEngine
	coreThreadsInitializationGroup sync.WaitGroup
}

func NewController(engines []ApplicationEngine) (controller *Controller) {
	return &Controller{
		engines: engines,
	}
}

func (controller *Controller) Initialize() {
	for engineIndex, engine := range controller.engines {
		if engine == nil {
			panic(fmt.Sprintf("Engine %d is nil", engineIndex))
		}
		controller.coreThreadsInitializationGroup.Add(1)
		go engine.Initialize(&controller.coreThreadsInitializationGroup)
	}

	controller.coreThreadsInitializationGroup.Wait()
}
