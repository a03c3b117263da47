package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/glrhi/engine/renderer/rhi"
)

type ShaderLoader struct{}

var shaderStages = map[string]rhi.ShaderType{
	".vert": rhi.SHADER_TYPE_VERTEX,
	".frag": rhi.SHADER_TYPE_PIXEL,
	".geom": rhi.SHADER_TYPE_GEOMETRY,
	".tesc": rhi.SHADER_TYPE_HULL,
	".tese": rhi.SHADER_TYPE_DOMAIN,
	".comp": rhi.SHADER_TYPE_COMPUTE,
	".task": rhi.SHADER_TYPE_TASK,
	".mesh": rhi.SHADER_TYPE_MESH,
}

// ShaderStageOf maps a GLSL file extension to its stage.
func ShaderStageOf(path string) (rhi.ShaderType, bool) {
	stage, ok := shaderStages[filepath.Ext(path)]
	return stage, ok
}

func (sl *ShaderLoader) Load(path string, params interface{}) (*Resource, error) {
	stage, ok := ShaderStageOf(path)
	if !ok {
		return nil, fmt.Errorf("unknown shader stage for %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     filepath.Base(path),
		FullPath: path,
		Type:     ResourceTypeShader,
		DataSize: uint64(len(data)),
		Data:     &ShaderData{Stage: stage, Code: string(data)},
	}, nil
}

func (sl *ShaderLoader) Unload(*Resource) error {
	return nil
}
