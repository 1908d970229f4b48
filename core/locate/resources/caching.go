package resources

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko"
)

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(conf schuko.Configuration, subfolders ...string) (string, error) {
	if conf.GetString("app-key") == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := cacheDir(conf, subfolders...)
	if err != nil {
		return "", err
	}
	tracer().Infof("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}

// cacheDir returns the path of a folder in the user's cache directory without
// creating it. An empty application key leaves out the application's folder.
func cacheDir(conf schuko.Configuration, subfolders ...string) (string, error) {
	appkey := conf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cachedir, appkey, filepath.Join(subfolders...)), nil
}
