package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ruminansiart-arch/Installer/internal/asset"
	"github.com/ruminansiart-arch/Installer/internal/database"
	"github.com/ruminansiart-arch/Installer/internal/folder"
	"github.com/ruminansiart-arch/Installer/internal/network"
	"github.com/ruminansiart-arch/Installer/internal/network/resources"
	"github.com/sirupsen/logrus"
)

// StorageEngine places catalog assets into the model folders of the
// installed applications. Assets already on disk are left alone; the
// others are fetched through the network engine, trying the storage
// mirror before the HTTP origin when one is configured.
type StorageEngine struct {
	databaseEngine *database.Database
	networkEngine  *network.NetworkEngine
	basePath       string
	civitaiAPIKey  string
	storjAccess    string
}

func NewStorageEngine(databaseEngine *database.Database, networkEngine *network.NetworkEngine, basePath string, civitaiAPIKey string, storjAccess string) (instance *StorageEngine, err error) {
	instance = &StorageEngine{
		databaseEngine: databaseEngine,
		networkEngine:  networkEngine,
		basePath:       basePath,
		civitaiAPIKey:  civitaiAPIKey,
		storjAccess:    storjAccess,
	}
	return
}

func (storageEngine *StorageEngine) Initialize(waitGroup *sync.WaitGroup) {
	if err := os.MkdirAll(filepath.Join(storageEngine.basePath, folder.TEMP), 0755); err != nil {
		panic(err)
	}
	waitGroup.Done()
}

// CategoryPath maps an asset category to its destination folder. An
// unknown category resolves to false.
func (storageEngine *StorageEngine) CategoryPath(category string) (categoryPath string, known bool) {
	if relativePath, ok := folder.WebUIModelFolders[category]; ok {
		return filepath.Join(storageEngine.basePath, relativePath), true
	}
	if relativePath, ok := folder.ComfyUIModelFolders[category]; ok {
		return filepath.Join(storageEngine.basePath, relativePath), true
	}
	return "", false
}

// FetchAssets downloads every missing catalog asset. It returns the
// number of assets that could not be fetched.
func (storageEngine *StorageEngine) FetchAssets() (failures int, err error) {
	var assets []asset.Asset
	if assets, err = storageEngine.databaseEngine.GetAssets(); err != nil {
		logrus.Error("Cannot get the assets from the database")
		logrus.Errorf("%+v", err)
		return
	}

	for _, assetEntry := range assets {
		categoryPath, known := storageEngine.CategoryPath(assetEntry.Category)
		if !known {
			logrus.Warnf("Skipping the asset %s: unknown category %s", assetEntry.Slug, assetEntry.Category)
			continue
		}
		if err := os.MkdirAll(categoryPath, 0755); err != nil {
			logrus.Errorf("%+v", err)
			failures++
			continue
		}
		destinationPath := filepath.Join(categoryPath, assetEntry.FileName)
		if _, statError := os.Stat(destinationPath); statError == nil {
			logrus.Infof("The file already exists: %s", destinationPath)
			continue
		}
		if !storageEngine.fetchAsset(&assetEntry, categoryPath) {
			failures++
		}
	}
	return
}

// fetchAsset transfers a single asset, preferring the mirror and
// falling back to the HTTP origin when the mirror is unusable or the
// transfer fails. Transfers land in the temp folder and the finished
// file is moved into place, so a partial download never shadows the
// final file.
func (storageEngine *StorageEngine) fetchAsset(assetEntry *asset.Asset, categoryPath string) bool {
	tempPath := filepath.Join(storageEngine.basePath, folder.TEMP)
	if assetEntry.MirrorUrl.Valid && storageEngine.storjAccess != "" {
		mirrorHandler := &resources.StorjResource{
			URL:    assetEntry.MirrorUrl.String,
			Access: storageEngine.storjAccess,
		}
		mirrorResource := storageEngine.networkEngine.AddResource(mirrorHandler, tempPath, assetEntry.FileName)
		if err := storageEngine.networkEngine.Download(mirrorResource); err == nil {
			return storageEngine.placeAsset(mirrorResource, categoryPath)
		}
		logrus.Warnf("Mirror download of %s failed, falling back to the HTTP origin", assetEntry.Slug)
	}

	originHandler := &resources.HTTPResource{
		URL:         assetEntry.Url,
		BearerToken: storageEngine.bearerToken(assetEntry.Url),
	}
	originResource := storageEngine.networkEngine.AddResource(originHandler, tempPath, assetEntry.FileName)
	if err := storageEngine.networkEngine.Download(originResource); err == nil {
		return storageEngine.placeAsset(originResource, categoryPath)
	}

	if originHandler.BearerToken != "" {
		// A rejected token should not block a publicly downloadable
		// file, retry anonymously
		logrus.Warnf("Authenticated download of %s failed, retrying without the API key", assetEntry.Slug)
		anonymousHandler := &resources.HTTPResource{URL: assetEntry.Url}
		anonymousResource := storageEngine.networkEngine.AddResource(anonymousHandler, tempPath, assetEntry.FileName)
		if err := storageEngine.networkEngine.Download(anonymousResource); err == nil {
			return storageEngine.placeAsset(anonymousResource, categoryPath)
		}
	}

	logrus.Errorf("Cannot download the asset %s", assetEntry.Slug)
	return false
}

// placeAsset moves a finished download from the temp folder to its
// category folder.
func (storageEngine *StorageEngine) placeAsset(resource *resources.Resource, categoryPath string) bool {
	destinationPath := filepath.Join(categoryPath, resource.FileName)
	if err := os.Rename(resource.DestinationPath(), destinationPath); err != nil {
		logrus.Errorf("%+v", err)
		return false
	}
	return true
}

// bearerToken returns the API key for hosts that expect it. Only the
// model registry behind gated downloads gets the token.
func (storageEngine *StorageEngine) bearerToken(assetUrl string) string {
	if storageEngine.civitaiAPIKey == "" {
		return ""
	}
	parsedUrl, err := url.Parse(assetUrl)
	if err != nil {
		return ""
	}
	if parsedUrl.Host == "civitai.com" || strings.HasSuffix(parsedUrl.Host, ".civitai.com") {
		return storageEngine.civitaiAPIKey
	}
	return ""
}
