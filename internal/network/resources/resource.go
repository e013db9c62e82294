package resources

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ruminansiart-arch/Installer/pkg/eventemitter"
	"github.com/sirupsen/logrus"
)

type ResourceStatus int

const (
	PENDING ResourceStatus = iota
	DOWNLOADING
	DOWNLOADED
	ABORTING
	ERROR
)

type ResourceHandler interface {
	GetURL() string
	Download(resource *Resource)
}

// Resource is a single remote file being brought into the local
// workspace. The handler implements the transfer, the resource tracks
// destination, progress and terminal status.
type Resource struct {
	Handler   ResourceHandler
	Path      string
	FileName  string
	Total     int64
	Available int64
	Status    ResourceStatus
	Err       error

	// Event emitters
	AvailableEventEmitter       eventemitter.EventEmitter[*Resource]
	ProgressUpdatedEventEmitter eventemitter.EventEmitter[*Resource]
	StatusUpdatedEventEmitter   eventemitter.EventEmitter[*Resource]
}

func NewResource(resourceHandler ResourceHandler, resourcePath string, fileName string) *Resource {
	return &Resource{
		Handler:  resourceHandler,
		Path:     resourcePath,
		FileName: fileName,
		Status:   PENDING,
	}
}

func (resource *Resource) SetStatus(status ResourceStatus) {
	resource.Status = status
	if resource.Status == DOWNLOADED {
		resource.AvailableEventEmitter.Emit(resource)
	}
	resource.StatusUpdatedEventEmitter.Emit(resource)
}

func (resource *Resource) Fail(err error) {
	resource.Err = err
	resource.SetStatus(ERROR)
}

// Write accounts transferred bytes, it never stores them: the resource
// is the progress side of an io.TeeReader pair.
func (resource *Resource) Write(buffer []byte) (int, error) {
	bufferSize := len(buffer)
	resource.Available += int64(bufferSize)
	resource.ProgressUpdatedEventEmitter.Emit(resource)
	return bufferSize, nil
}

func (resource *Resource) Download() {
	resource.SetStatus(DOWNLOADING)
	resource.Handler.Download(resource)
}

// DestinationPath is the final location of the downloaded file.
func (resource *Resource) DestinationPath() string {
	return filepath.Join(resource.Path, resource.FileName)
}

// Save streams the remote content to the destination file, counting
// progress through the resource itself.
func (resource *Resource) Save(reader io.Reader) error {
	if err := os.MkdirAll(resource.Path, 0755); err != nil {
		logrus.Errorf("%+v", err)
		return err
	}
	out, err := os.Create(resource.DestinationPath())
	if err != nil {
		logrus.Errorf("%+v", err)
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, io.TeeReader(reader, resource)); err != nil {
		logrus.Errorf("%+v", err)
		return err
	}
	return nil
}
