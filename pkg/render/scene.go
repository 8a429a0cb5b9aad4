package render

import (
	"log/slog"
	"openglhelper"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/model"
)

var vertexLayout = []openglhelper.VertexAttrib{
	{Location: 0, Size: 3, Offset: model.PositionOffset},
	{Location: 1, Size: 2, Offset: model.TexCoordOffset},
	{Location: 2, Size: 3, Offset: model.NormalOffset},
}

// drawCall is one index range drawn with one texture and tint. An empty texture path means the
// solid white texture.
type drawCall struct {
	begin, count int
	texture      string
	tint         mgl32.Vec3
}

// planDraws turns a model's meshes into draw calls. Meshes without a material use tint.
func planDraws(m *model.Model, tint mgl32.Vec3) []drawCall {
	draws := make([]drawCall, 0, len(m.Meshes))
	for _, mesh := range m.Meshes {
		if mesh.IndexCount <= 0 {
			continue
		}
		dc := drawCall{begin: mesh.IndexBegin, count: mesh.IndexCount, tint: tint}
		if mesh.Material != model.NoMaterial && mesh.Material < len(m.Materials) {
			mat := m.Materials[mesh.Material]
			dc.texture = mat.DiffuseTexture
			dc.tint = mgl32.Vec3(mat.Diffuse)
			if dc.tint == (mgl32.Vec3{}) {
				dc.tint = whiteTint
			}
		}
		draws = append(draws, dc)
	}
	return draws
}

// object is an uploaded model with its placement.
type object struct {
	name      string
	mesh      *openglhelper.Mesh
	draws     []drawCall
	transform mgl32.Mat4
}

func (o *object) draw(shader *openglhelper.Shader, textures *textureCache, transform mgl32.Mat4) {
	shader.SetMat4("model", transform)
	for _, dc := range o.draws {
		textures.get(dc.texture).Bind(textureUnit)
		shader.SetVec3("tint", dc.tint)
		o.mesh.DrawRange(dc.begin, dc.count)
	}
}

// textureCache loads each diffuse map once. Paths that fail to load fall back to white.
type textureCache struct {
	white  *openglhelper.Texture
	byPath map[string]*openglhelper.Texture
}

func newTextureCache() *textureCache {
	return &textureCache{
		white:  openglhelper.NewTexture(model.Solid(0xffffffff)),
		byPath: make(map[string]*openglhelper.Texture),
	}
}

func (c *textureCache) get(path string) *openglhelper.Texture {
	if path == "" {
		return c.white
	}
	if tex, ok := c.byPath[path]; ok {
		return tex
	}

	tex := c.white
	img, err := model.LoadImage(path)
	if err != nil {
		slog.Warn("using solid texture", "path", path, "error", err)
	} else {
		tex = openglhelper.NewTexture(img)
		slog.Debug("texture loaded", "path", path, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	}
	c.byPath[path] = tex
	return tex
}

func (c *textureCache) delete() {
	for path, tex := range c.byPath {
		if tex != c.white {
			tex.Delete()
		}
		delete(c.byPath, path)
	}
	c.white.Delete()
}

// Scene is the static geometry drawn every frame.
type Scene struct {
	objects  []*object
	player   *object
	textures *textureCache
}

func (s *Scene) add(m *model.Model, tint mgl32.Vec3, transform mgl32.Mat4) *object {
	obj := &object{
		name:      m.Name,
		mesh:      openglhelper.NewMesh(m.Vertices, m.Indices, model.FloatsPerVertex, vertexLayout),
		draws:     planDraws(m, tint),
		transform: transform,
	}
	// warm the cache so texture errors are reported at load time
	for _, dc := range obj.draws {
		s.textures.get(dc.texture)
	}
	slog.Debug("mesh uploaded", "name", m.Name, "vertices", m.VertexCount(), "indices", len(m.Indices), "draws", len(obj.draws))
	return obj
}

// newScene uploads m, or a ground plane and a cube when m is nil. A player cube is prepared for
// the orbit viewpoint.
func newScene(m *model.Model) *Scene {
	s := &Scene{textures: newTextureCache()}

	if m != nil {
		s.objects = append(s.objects, s.add(m, whiteTint, mgl32.Ident4()))
	} else {
		s.objects = append(s.objects,
			s.add(model.Plane(groundSize), groundTint, mgl32.Ident4()),
			s.add(model.Cube(), cubeTint, mgl32.Translate3D(cubeOrigin.X(), cubeOrigin.Y(), cubeOrigin.Z())),
		)
	}
	s.player = s.add(model.Cube(), playerTint, mgl32.Ident4())
	return s
}

// Draw renders every scene object. When player is non-nil the player cube is drawn with it as the
// body's model matrix.
func (s *Scene) Draw(shader *openglhelper.Shader, player *mgl32.Mat4) {
	for _, obj := range s.objects {
		obj.draw(shader, s.textures, obj.transform)
	}
	if player != nil {
		// cube is centred on the origin; lift it so it stands on the body's position
		body := player.Mul4(mgl32.Scale3D(playerScale.X(), playerScale.Y(), playerScale.Z())).
			Mul4(mgl32.Translate3D(0, 0.5, 0))
		s.player.draw(shader, s.textures, body)
	}
}

// Delete releases all GPU resources held by the scene.
func (s *Scene) Delete() {
	for _, obj := range s.objects {
		obj.mesh.Delete()
	}
	s.player.mesh.Delete()
	s.textures.delete()
}
