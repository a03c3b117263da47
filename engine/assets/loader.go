package assets

import "github.com/spaghettifunk/glrhi/engine/assets/loaders"

type Loader interface {
	Load(path string, params interface{}) (*loaders.Resource, error) // `interface{}` here allows loaders to take per type options
	Unload(*loaders.Resource) error
}
