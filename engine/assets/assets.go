package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/glrhi/engine/assets/loaders"
	"github.com/spaghettifunk/glrhi/engine/core"
)

var ErrAssetNotFound = errors.New("asset not found")

type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	LastLoaded time.Time
}

/**
 * @brief Indexes the shader and image files under an assets directory and
 * reports files that change on disk so they can be reloaded.
 */
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	changed  chan string
	wg       sync.WaitGroup
	once     sync.Once
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		fsnotify: fsWatch,
		changed:  make(chan string, 16),
		done:     make(chan struct{}),
	}
	// Register loaders
	am.registerLoader(loaders.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(loaders.ResourceTypeImage, &loaders.TextureLoader{})
	return am, nil
}

// Initialize indexes assetsDir and starts watching it and its sub directories.
func (am *AssetManager) Initialize(assetsDir string) error {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.root = root
	if err := am.watchRecursive(root); err != nil {
		return err
	}
	am.wg.Add(1)
	go am.start()
	return nil
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType loaders.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// Changed delivers the relative path of every indexed asset written on disk.
// Events are dropped when nobody drains the channel.
func (am *AssetManager) Changed() <-chan string {
	return am.changed
}

// Count returns the number of indexed assets.
func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// LoadAsset loads name, relative to the assets directory, with the loader
// registered for its type.
func (am *AssetManager) LoadAsset(name string, params interface{}) (*loaders.Resource, error) {
	path := filepath.ToSlash(filepath.Clean(name))

	am.mutex.Lock()
	asset, exists := am.assets[path]
	if exists {
		// Update the loaded time
		asset.LastLoaded = time.Now()
		am.assets[path] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("%s: %w", path, ErrAssetNotFound)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Load(filepath.Join(am.root, filepath.FromSlash(path)), params)
}

func (am *AssetManager) UnloadAsset(asset *loaders.Resource) error {
	if asset == nil {
		return nil
	}
	if loader, ok := am.loaders[asset.Type]; ok {
		return loader.Unload(asset)
	}
	return nil
}

func (am *AssetManager) Shutdown() error {
	var err error
	am.once.Do(func() {
		close(am.done)
		err = am.fsnotify.Close()
		am.wg.Wait()
	})
	return err
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogError(err.Error())
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if rel, ok := am.handleFileEvent(e.Name); ok {
					am.notify(rel)
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) notify(rel string) {
	select {
	case am.changed <- rel:
	default:
		core.LogWarn("asset change dropped: %s", rel)
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files found.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) (string, bool) {
	rel, ok := am.relative(path)
	if !ok {
		return "", false
	}
	assetType := determineAssetType(rel)
	if assetType == loaders.ResourceTypeNone {
		return "", false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[rel] = AssetInfo{
		Path:       rel,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	return rel, true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	rel, ok := am.relative(path)
	if !ok {
		return
	}
	am.mutex.Lock()
	defer am.mutex.Unlock()
	delete(am.assets, rel)
}

func (am *AssetManager) relative(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(am.root, abs)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func determineAssetType(path string) loaders.ResourceType {
	if _, ok := loaders.ShaderStageOf(path); ok {
		return loaders.ResourceTypeShader
	}
	switch filepath.Ext(path) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return loaders.ResourceTypeImage
	default:
		return loaders.ResourceTypeNone
	}
}
