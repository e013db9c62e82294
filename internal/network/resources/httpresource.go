package resources

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// HTTPResource downloads over plain HTTP. A bearer token is attached
// when set, which gated model registries require.
type HTTPResource struct {
	URL         string
	BearerToken string
}

func (httpResource *HTTPResource) GetURL() string {
	return httpResource.URL
}

func (httpResource *HTTPResource) Download(resource *Resource) {
	request, err := http.NewRequest(http.MethodGet, httpResource.URL, nil)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	if httpResource.BearerToken != "" {
		request.Header.Set("Authorization", "Bearer "+httpResource.BearerToken)
	}
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		err = errors.New("unexpected response status " + response.Status)
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	resource.Total = response.ContentLength
	if err := resource.Save(response.Body); err != nil {
		resource.Fail(err)
		logrus.Errorf("%+v", err)
		return
	}
	resource.SetStatus(DOWNLOADED)
}
