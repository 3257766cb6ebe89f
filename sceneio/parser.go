// Package sceneio reads the whitespace-tokenized scene description
// format (camera, lights, pigments, surfaces, shapes) described in the
// external interfaces section into a scene.Scene and a camera.Camera.
package sceneio

import (
	"fmt"
	"os"

	"raytracer/camera"
	"raytracer/core"
	"raytracer/light"
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
	"raytracer/scene"
	"raytracer/shapes"
)

// Load reads a scene file from path and returns the parsed scene and
// camera. Parse errors are fatal; I/O errors are wrapped.
func Load(path string, orthogonal bool) (*scene.Scene, *camera.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sceneio: read %q: %w", path, err)
	}

	lex := newLexer(string(data))

	cam, err := parseCamera(lex, orthogonal)
	if err != nil {
		return nil, nil, err
	}

	s := scene.New()

	ambient, lights, err := parseLights(lex)
	if err != nil {
		return nil, nil, err
	}
	s.Ambient = ambient
	s.Lights = lights

	pigments, err := parsePigments(lex)
	if err != nil {
		return nil, nil, err
	}

	surfaces, err := parseSurfaces(lex)
	if err != nil {
		return nil, nil, err
	}

	shapeList, err := parseShapes(lex, pigments, surfaces)
	if err != nil {
		return nil, nil, err
	}
	s.Shapes = shapeList

	return s, cam, nil
}

func parseVec3(lex *lexer) (math.Vec3, error) {
	x, err := lex.nextFloat()
	if err != nil {
		return math.Vec3{}, err
	}
	y, err := lex.nextFloat()
	if err != nil {
		return math.Vec3{}, err
	}
	z, err := lex.nextFloat()
	if err != nil {
		return math.Vec3{}, err
	}
	return math.NewVec3(x, y, z), nil
}

func parseColor(lex *lexer) (core.Color, error) {
	v, err := parseVec3(lex)
	if err != nil {
		return core.Color{}, err
	}
	return core.Color{R: v.X, G: v.Y, B: v.Z, A: 1}, nil
}

func parseCamera(lex *lexer, orthogonal bool) (*camera.Camera, error) {
	pos, err := parseVec3(lex)
	if err != nil {
		return nil, err
	}
	lookAt, err := parseVec3(lex)
	if err != nil {
		return nil, err
	}
	up, err := parseVec3(lex)
	if err != nil {
		return nil, err
	}
	fov, err := lex.nextFloat()
	if err != nil {
		return nil, err
	}
	return camera.New(pos, lookAt, up, fov, orthogonal), nil
}

// parseLights reads the sentinel-decremented lights block: `count`
// then `count` nine-token records (x y z r g b kc kl kq); the first
// record's position and attenuation fields are discarded, only its
// r g b becomes the scene's ambient color.
func parseLights(lex *lexer) (core.Color, []light.Light, error) {
	count, err := lex.nextInt()
	if err != nil {
		return core.Color{}, nil, err
	}
	if count < 1 {
		return core.Color{}, nil, &ParseError{Line: lex.line(), Msg: "lights block count must include the ambient sentinel"}
	}

	var ambient core.Color
	var lights []light.Light
	for i := 0; i < count; i++ {
		position, err := parseVec3(lex)
		if err != nil {
			return core.Color{}, nil, err
		}
		color, err := parseColor(lex)
		if err != nil {
			return core.Color{}, nil, err
		}
		kc, err := lex.nextFloat()
		if err != nil {
			return core.Color{}, nil, err
		}
		kl, err := lex.nextFloat()
		if err != nil {
			return core.Color{}, nil, err
		}
		kq, err := lex.nextFloat()
		if err != nil {
			return core.Color{}, nil, err
		}
		if i == 0 {
			ambient = color
			continue
		}
		lights = append(lights, light.New(position, color, kc, kl, kq))
	}
	return ambient, lights, nil
}

func parsePigments(lex *lexer) ([]pigment.Texture, error) {
	count, err := lex.nextInt()
	if err != nil {
		return nil, err
	}
	textures := make([]pigment.Texture, 0, count)
	for i := 0; i < count; i++ {
		kw, err := lex.next()
		if err != nil {
			return nil, err
		}
		tex, err := parsePigment(lex, kw)
		if err != nil {
			return nil, err
		}
		textures = append(textures, tex)
	}
	return textures, nil
}

func parsePigment(lex *lexer, kw string) (pigment.Texture, error) {
	switch kw {
	case "solid":
		c, err := parseColor(lex)
		if err != nil {
			return nil, err
		}
		return pigment.NewSolid(c), nil
	case "checker":
		c1, err := parseColor(lex)
		if err != nil {
			return nil, err
		}
		c2, err := parseColor(lex)
		if err != nil {
			return nil, err
		}
		sx, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		sy, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		return pigment.NewChecker(c1, c2, sx, sy), nil
	case "moisture":
		c1, err := parseColor(lex)
		if err != nil {
			return nil, err
		}
		c2, err := parseColor(lex)
		if err != nil {
			return nil, err
		}
		sx, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		sy, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		seed, err := lex.nextUint()
		if err != nil {
			return nil, err
		}
		return pigment.NewMoisture(c1, c2, sx, sy, seed), nil
	case "bitmap":
		path, err := lex.next()
		if err != nil {
			return nil, err
		}
		sx, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		sy, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		return pigment.LoadBitmap(path, sx, sy)
	case "texmap":
		path, err := lex.next()
		if err != nil {
			return nil, err
		}
		p0, err := parseVec4(lex)
		if err != nil {
			return nil, err
		}
		p1, err := parseVec4(lex)
		if err != nil {
			return nil, err
		}
		bmp, err := pigment.LoadBitmap(path, 1, 1)
		if err != nil {
			return nil, err
		}
		tm := pigment.NewTexMap(bmp, p0, p1)
		return texMapAdapter{tm}, nil
	default:
		return nil, &ParseError{Line: lex.line(), Msg: "unrecognized pigment keyword " + kw}
	}
}

// texMapAdapter satisfies pigment.Texture by sampling the TexMap's
// bitmap directly at (u,v); the shape's hit point isn't available at
// this layer, so the P0/P1 patch projection is not applied.
type texMapAdapter struct {
	tm pigment.TexMap
}

func (t texMapAdapter) At(u, v float32) core.Color {
	return t.tm.Bitmap.At(u, v)
}

func parseVec4(lex *lexer) (math.Vec4, error) {
	x, err := lex.nextFloat()
	if err != nil {
		return math.Vec4{}, err
	}
	y, err := lex.nextFloat()
	if err != nil {
		return math.Vec4{}, err
	}
	z, err := lex.nextFloat()
	if err != nil {
		return math.Vec4{}, err
	}
	w, err := lex.nextFloat()
	if err != nil {
		return math.Vec4{}, err
	}
	return math.NewVec4(x, y, z, w), nil
}

func parseSurfaces(lex *lexer) ([]material.Material, error) {
	count, err := lex.nextInt()
	if err != nil {
		return nil, err
	}
	mats := make([]material.Material, 0, count)
	for i := 0; i < count; i++ {
		ambient, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		diffuse, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		specular, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		alpha, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		reflect, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		transmit, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		ior, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		mats = append(mats, material.New(ambient, diffuse, specular, alpha, reflect, transmit, ior))
	}
	return mats, nil
}

func parseShapes(lex *lexer, pigments []pigment.Texture, surfaces []material.Material) ([]shapes.Shape, error) {
	count, err := lex.nextInt()
	if err != nil {
		return nil, err
	}
	list := make([]shapes.Shape, 0, count)
	for i := 0; i < count; i++ {
		shp, err := parseShape(lex, pigments, surfaces)
		if err != nil {
			return nil, err
		}
		list = append(list, shp)
	}
	return list, nil
}

// parseShape reads one shape record: `pigment_index surface_index
// type` followed by the type-specific field sequence.
func parseShape(lex *lexer, pigments []pigment.Texture, surfaces []material.Material) (shapes.Shape, error) {
	pigmentIdx, err := lex.nextInt()
	if err != nil {
		return nil, err
	}
	surfaceIdx, err := lex.nextInt()
	if err != nil {
		return nil, err
	}
	kw, err := lex.next()
	if err != nil {
		return nil, err
	}

	var tex pigment.Texture
	var mat material.Material
	if pigmentIdx >= 0 && pigmentIdx < len(pigments) {
		tex = pigments[pigmentIdx]
	} else {
		tex = pigment.NewSolid(core.ColorBlack)
	}
	if surfaceIdx >= 0 && surfaceIdx < len(surfaces) {
		mat = surfaces[surfaceIdx]
	} else {
		mat = material.Default
	}

	switch kw {
	case "sphere":
		center, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		radius, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		return shapes.NewSphere(center, radius, tex, mat), nil

	case "box":
		min, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		max, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		return shapes.NewBox(min, max, tex, mat), nil

	case "cylinder":
		bottom, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		top, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		radius, err := lex.nextFloat()
		if err != nil {
			return nil, err
		}
		return shapes.NewCylinder(bottom, top, radius, tex, mat), nil

	case "polyhedron":
		planeCount, err := lex.nextInt()
		if err != nil {
			return nil, err
		}
		planes := make([]math.Plane, 0, planeCount)
		for i := 0; i < planeCount; i++ {
			n, err := parseVec3(lex)
			if err != nil {
				return nil, err
			}
			offset, err := lex.nextFloat()
			if err != nil {
				return nil, err
			}
			planes = append(planes, math.NewPlane(n, offset))
		}
		return shapes.NewPolyhedron(planes, tex, mat), nil

	case "csg_tree":
		opKw, err := lex.next()
		if err != nil {
			return nil, err
		}
		op, err := parseOp(lex, opKw)
		if err != nil {
			return nil, err
		}
		left, err := parseShape(lex, pigments, surfaces)
		if err != nil {
			return nil, err
		}
		right, err := parseShape(lex, pigments, surfaces)
		if err != nil {
			return nil, err
		}
		return shapes.NewCSG(op, left, right), nil

	case "union":
		k, err := lex.nextInt()
		if err != nil {
			return nil, err
		}
		if k < 1 {
			return nil, &ParseError{Line: lex.line(), Msg: "union requires at least one child shape"}
		}
		children := make([]shapes.Shape, k)
		for i := 0; i < k; i++ {
			children[i], err = parseShape(lex, pigments, surfaces)
			if err != nil {
				return nil, err
			}
		}
		result := children[k-1]
		for i := k - 2; i >= 0; i-- {
			result = shapes.NewCSG(shapes.Union, children[i], result)
		}
		return result, nil

	case "transform":
		pivot, err := parseVec3(lex)
		if err != nil {
			return nil, err
		}
		opCount, err := lex.nextInt()
		if err != nil {
			return nil, err
		}
		m := math.Mat4Identity()
		for i := 0; i < opCount; i++ {
			opMat, err := parseTransformOp(lex)
			if err != nil {
				return nil, err
			}
			m = m.Mul(opMat)
		}
		child, err := parseShape(lex, pigments, surfaces)
		if err != nil {
			return nil, err
		}
		return shapes.NewTransform(child, pivot, m), nil

	default:
		return nil, &ParseError{Line: lex.line(), Msg: "unrecognized shape keyword " + kw}
	}
}

func parseOp(lex *lexer, kw string) (shapes.Op, error) {
	switch kw {
	case "union":
		return shapes.Union, nil
	case "intersection":
		return shapes.Intersection, nil
	case "subtraction":
		return shapes.Subtraction, nil
	default:
		return 0, &ParseError{Line: lex.line(), Msg: "unrecognized csg operator " + kw}
	}
}

func parseTransformOp(lex *lexer) (math.Mat4, error) {
	kw, err := lex.next()
	if err != nil {
		return math.Mat4{}, err
	}
	switch kw {
	case "translate":
		v, err := parseVec3(lex)
		if err != nil {
			return math.Mat4{}, err
		}
		return math.Mat4Translation(v), nil
	case "scale":
		v, err := parseVec3(lex)
		if err != nil {
			return math.Mat4{}, err
		}
		return math.Mat4Scale(v), nil
	case "rotate":
		axis, err := parseVec3(lex)
		if err != nil {
			return math.Mat4{}, err
		}
		angle, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		return math.QuaternionFromAxisAngle(axis, angle).ToMat4(), nil
	case "shear":
		hxy, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		hxz, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		hyx, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		hyz, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		hzx, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		hzy, err := lex.nextFloat()
		if err != nil {
			return math.Mat4{}, err
		}
		m := math.Mat4Identity()
		m[1][0], m[2][0] = hxy, hxz
		m[0][1], m[2][1] = hyx, hyz
		m[0][2], m[1][2] = hzx, hzy
		return m, nil
	default:
		return math.Mat4{}, &ParseError{Line: lex.line(), Msg: "unrecognized transform op " + kw}
	}
}
