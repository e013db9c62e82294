package network

import (
	"errors"
	"sync"

	"github.com/ruminansiart-arch/Installer/internal/network/resources"
	"github.com/sirupsen/logrus"
)

// NetworkEngine hands out tracked download resources and transfers
// them synchronously, one at a time.
type NetworkEngine struct {
}

func NewNetworkEngine() (instance *NetworkEngine, err error) {
	instance = &NetworkEngine{}
	return
}

func (networkEngine *NetworkEngine) Initialize(waitGroup *sync.WaitGroup) {
	waitGroup.Done()
}

// AddResource builds a tracked resource for the handler, wired with
// progress logging. The caller owns the transfer through Download.
func (networkEngine *NetworkEngine) AddResource(resourceHandler resources.ResourceHandler, resourcePath string, fileName string) *resources.Resource {
	resource := resources.NewResource(resourceHandler, resourcePath, fileName)
	resource.ProgressUpdatedEventEmitter.Subscribe(func(resource *resources.Resource) {
		if resource.Total > 0 {
			logrus.Debugf("%s: Download progress %d/%d (%d%%)",
				resource.Handler.GetURL(), resource.Available, resource.Total,
				resource.Available*100/resource.Total)
		}
	})
	return resource
}

// Download transfers a single resource and reports its terminal
// status.
func (networkEngine *NetworkEngine) Download(resource *resources.Resource) error {
	logrus.Infof("Downloading %s to %s", resource.Handler.GetURL(), resource.DestinationPath())
	resource.Download()
	if resource.Status != resources.DOWNLOADED {
		if resource.Err != nil {
			return resource.Err
		}
		return errors.New("the resource download failed")
	}
	return nil
}
