// Package viewer implements the interactive cone viewer application:
// window and GL setup, the render loop, and runtime mesh controls.
package viewer

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glgeom/internal/config"
	"github.com/Faultbox/glgeom/internal/engine/camera"
	"github.com/Faultbox/glgeom/internal/engine/input"
	"github.com/Faultbox/glgeom/internal/engine/mesh"
	"github.com/Faultbox/glgeom/internal/engine/shader"
	"github.com/Faultbox/glgeom/internal/engine/texture"
	"github.com/Faultbox/glgeom/internal/engine/window"
	"github.com/Faultbox/glgeom/internal/logger"
	"github.com/Faultbox/glgeom/pkg/geom"
	"github.com/Faultbox/glgeom/pkg/math"
)

// App is the viewer application instance.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.OrbitCamera

	cone     *geom.Cone
	coneMesh *mesh.Mesh

	program   uint32
	textureID uint32
	uniforms  uniformLocations

	width, height int
	spinAngle     float32
	spinning      bool

	dragging               bool
	lastMouseX, lastMouseY int
}

type uniformLocations struct {
	model      int32
	view       int32
	proj       int32
	lightDir   int32
	baseColor  int32
	useTexture int32
	texture    int32
}

// New creates the viewer: window plus GL context, shader program, cone
// mesh, and texture.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("slices", cfg.Mesh.Slices),
		zap.Int("stacks", cfg.Mesh.Stacks),
		zap.Int("rings", cfg.Mesh.Rings),
	)

	a := &App{
		cfg:      cfg,
		width:    cfg.Graphics.Width,
		height:   cfg.Graphics.Height,
		spinning: cfg.Render.SpinSpeed != 0,
	}

	// Window first: the GL context must exist before any gl call.
	var err error
	a.window, err = window.New(window.Config{
		Title:      "coneview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.initGL(); err != nil {
		a.window.Close()
		return nil, err
	}

	a.input = input.New()
	a.camera = camera.NewOrbitCamera()

	logger.Info("viewer initialized")
	return a, nil
}

// initGL sets up GL state, compiles the shader program, and builds the
// cone mesh and texture.
func (a *App) initGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	a.program, err = shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}

	a.uniforms = uniformLocations{
		model:      shader.GetUniform(a.program, "uModel"),
		view:       shader.GetUniform(a.program, "uView"),
		proj:       shader.GetUniform(a.program, "uProj"),
		lightDir:   shader.GetUniform(a.program, "uLightDir"),
		baseColor:  shader.GetUniform(a.program, "uBaseColor"),
		useTexture: shader.GetUniform(a.program, "uUseTexture"),
		texture:    shader.GetUniform(a.program, "uTexture"),
	}

	a.cone = geom.NewCone(a.cfg.Mesh.Slices, a.cfg.Mesh.Stacks, a.cfg.Mesh.Rings)
	a.coneMesh = mesh.New(a.cone, mesh.NewGLDevice())
	a.coneMesh.Init(mesh.AttribLocations{
		Position: shader.MustGetAttrib(a.program, "aPos"),
		Normal:   shader.GetAttrib(a.program, "aNormal"),
		TexCoord: shader.GetAttrib(a.program, "aTexCoord"),
	})

	a.textureID, err = a.loadTexture()
	if err != nil {
		return fmt.Errorf("failed to load texture: %w", err)
	}

	return nil
}

// loadTexture uploads the configured TGA file, or a procedural
// checkerboard when no path is set or decoding fails.
func (a *App) loadTexture() (uint32, error) {
	rgba := texture.Checkerboard(256, 8)

	if path := a.cfg.Render.TexturePath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("texture file unreadable, using checkerboard",
				zap.String("path", path), zap.Error(err))
		} else if img, err := texture.DecodeTGA(data); err != nil {
			logger.Warn("texture decode failed, using checkerboard",
				zap.String("path", path), zap.Error(err))
		} else {
			rgba = texture.ImageToRGBA(img)
			logger.Info("texture loaded",
				zap.String("path", path),
				zap.Int("width", rgba.Bounds().Dx()),
				zap.Int("height", rgba.Bounds().Dy()),
			)
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

// Run starts the main loop. It returns when the window is closed or
// ESC is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		a.update(dt)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent dispatches one input event.
func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.width = event.Width
		a.height = event.Height
		gl.Viewport(0, 0, int32(event.Width), int32(event.Height))

	case input.EventKeyDown:
		a.handleKey(event.Key)

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			a.dragging = true
			a.lastMouseX = event.MouseX
			a.lastMouseY = event.MouseY
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			a.dragging = false
		}

	case input.EventMouseMove:
		if a.dragging {
			dx := float32(event.MouseX - a.lastMouseX)
			dy := float32(event.MouseY - a.lastMouseY)
			a.camera.HandleDrag(dx, dy)
			a.lastMouseX = event.MouseX
			a.lastMouseY = event.MouseY
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(event.Wheel))
	}
}

// handleKey applies the runtime controls: mesh resolution, region and
// texture toggles, spin pause, config save, quit.
func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_UP:
		a.remesh(a.cone.Slices()+1, a.cone.Stacks(), a.cone.Rings())
	case sdl.SCANCODE_DOWN:
		a.remesh(a.cone.Slices()-1, a.cone.Stacks(), a.cone.Rings())
	case sdl.SCANCODE_RIGHT:
		a.remesh(a.cone.Slices(), a.cone.Stacks()+1, a.cone.Rings())
	case sdl.SCANCODE_LEFT:
		a.remesh(a.cone.Slices(), a.cone.Stacks()-1, a.cone.Rings())
	case sdl.SCANCODE_PAGEUP:
		a.remesh(a.cone.Slices(), a.cone.Stacks(), a.cone.Rings()+1)
	case sdl.SCANCODE_PAGEDOWN:
		a.remesh(a.cone.Slices(), a.cone.Stacks(), a.cone.Rings()-1)

	case sdl.SCANCODE_B:
		a.cfg.Render.ShowBase = !a.cfg.Render.ShowBase
	case sdl.SCANCODE_N:
		a.cfg.Render.ShowSide = !a.cfg.Render.ShowSide
	case sdl.SCANCODE_T:
		a.cfg.Render.Textured = !a.cfg.Render.Textured
	case sdl.SCANCODE_SPACE:
		a.spinning = !a.spinning

	case sdl.SCANCODE_F2:
		if err := a.cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved")
		}
	}
}

// remesh changes the cone resolution and keeps the config in sync with
// the clamped values. The GPU buffers refresh lazily on the next render.
func (a *App) remesh(slices, stacks, rings int) {
	a.cone.Remesh(slices, stacks, rings)
	a.cfg.Mesh.Slices = a.cone.Slices()
	a.cfg.Mesh.Stacks = a.cone.Stacks()
	a.cfg.Mesh.Rings = a.cone.Rings()

	logger.Info("remeshed cone",
		zap.Int("slices", a.cone.Slices()),
		zap.Int("stacks", a.cone.Stacks()),
		zap.Int("rings", a.cone.Rings()),
		zap.Int("triangles", a.cone.ElementCount()/3),
	)
}

// update advances the spin animation.
func (a *App) update(dt float32) {
	if a.spinning {
		a.spinAngle += a.cfg.Render.SpinSpeed * dt
	}
}

// render draws the current frame: the cone's base and side regions are
// separate index ranges, so each can be toggled independently.
func (a *App) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(a.program)

	model := math.RotateY(a.spinAngle)
	view := a.camera.ViewMatrix()
	aspect := float32(a.width) / float32(a.height)
	proj := math.Perspective(math.DegToRad(45), aspect, 0.1, 100)

	gl.UniformMatrix4fv(a.uniforms.model, 1, false, model.Ptr())
	gl.UniformMatrix4fv(a.uniforms.view, 1, false, view.Ptr())
	gl.UniformMatrix4fv(a.uniforms.proj, 1, false, proj.Ptr())
	gl.Uniform3f(a.uniforms.lightDir, 0.4, 1.0, 0.6)
	gl.Uniform3f(a.uniforms.baseColor, 0.8, 0.5, 0.3)

	if a.cfg.Render.Textured {
		gl.Uniform1i(a.uniforms.useTexture, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, a.textureID)
		gl.Uniform1i(a.uniforms.texture, 0)
	} else {
		gl.Uniform1i(a.uniforms.useTexture, 0)
	}

	if a.cfg.Render.ShowBase {
		a.coneMesh.RenderRange(0, a.cone.ElementCountDisk())
	}
	if a.cfg.Render.ShowSide {
		a.coneMesh.RenderRange(a.cone.ElementCountDisk(), a.cone.ElementCountSide())
	}
}

// Close releases GL resources and destroys the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.coneMesh != nil {
		a.coneMesh.Release()
	}
	if a.textureID != 0 {
		gl.DeleteTextures(1, &a.textureID)
	}
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
	if a.window != nil {
		a.window.Close()
	}
}
