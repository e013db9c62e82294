package resources

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	"storj.io/uplink"
)

// StorjResource downloads from a distributed storage mirror. The URL
// uses the sj scheme, the host names the bucket and the path the
// object key; Access is the serialized access grant.
type StorjResource struct {
	URL    string
	Access string
}

func (storjResource *StorjResource) GetURL() string {
	return storjResource.URL
}

func (storjResource *StorjResource) Download(resource *Resource) {
	mirrorURL, err := url.Parse(storjResource.URL)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	bucket := mirrorURL.Host
	objectKey := mirrorURL.Path
	if len(objectKey) > 0 && objectKey[0] == '/' {
		objectKey = objectKey[1:]
	}

	userAccess, err := uplink.ParseAccess(storjResource.Access)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	project, err := uplink.OpenProject(context.Background(), userAccess)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	defer project.Close()
	stat, err := project.StatObject(context.Background(), bucket, objectKey)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	resource.Total = stat.System.ContentLength
	download, err := project.DownloadObject(context.Background(), bucket, objectKey, nil)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	defer download.Close()
	if err := resource.Save(download); err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	resource.SetStatus(DOWNLOADED)
}
