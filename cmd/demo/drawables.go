package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"render-demo/gpu"
	"render-demo/internal/config"
	"render-demo/scene"
)

// buildDrawables creates the configured scene objects in order. Nothing
// touches the GPU until the scene initializes them.
func buildDrawables(dev gpu.Device, cfg config.Config) ([]scene.Drawable, error) {
	out := make([]scene.Drawable, 0, len(cfg.Drawables))
	for i, d := range cfg.Drawables {
		obj, err := buildDrawable(dev, d)
		if err != nil {
			return nil, fmt.Errorf("drawable %d (%s): %w", i, d.Kind, err)
		}
		out = append(out, obj)
	}
	return out, nil
}

func buildDrawable(dev gpu.Device, d config.Drawable) (scene.Drawable, error) {
	a, b := d.Resolution[0], d.Resolution[1]
	switch d.Kind {
	case config.KindSphere, config.KindCylinder:
		img, err := shapeImage(d.Texture)
		if err != nil {
			return nil, err
		}
		if d.Kind == config.KindSphere {
			return scene.NewTexturedSphere(dev, a, b, img)
		}
		return scene.NewTexturedCylinder(dev, a, b, img)

	case config.KindQuad:
		return scene.NewQuad(dev), nil

	case config.KindSkybox:
		return scene.NewSkybox(dev, scene.GradientCubemap(max(a, 1))), nil

	case config.KindDepth:
		return scene.NewDepthMeshObject(dev, scene.DemoDepth(a, b), a, b)

	case config.KindModel:
		var (
			set *scene.ModelSet
			err error
		)
		switch strings.ToLower(filepath.Ext(d.Path)) {
		case ".obj":
			set, err = scene.LoadOBJ(d.Path)
		case ".gltf", ".glb":
			set, err = scene.LoadGLTF(d.Path)
		default:
			return nil, fmt.Errorf("unsupported model file %q", d.Path)
		}
		if err != nil {
			return nil, err
		}
		return scene.NewMeshObject(dev, set), nil
	}
	return nil, fmt.Errorf("unknown kind %q", d.Kind)
}

// shapeImage loads a texture file, or generates a chessboard when path is
// empty.
func shapeImage(path string) (gpu.Image, error) {
	if path == "" {
		return scene.ChessboardImage(8, 256), nil
	}
	return scene.LoadImage(path)
}
