package folder

import "path/filepath"

// Workspace layout. Every path is relative to the configured workspace
// root (WORKSPACE_PATH, "/workspace" on a stock pod).
const (
	ENVIRONMENTS = "ENVS"
	SYSTEM       = "system"
	TEMP         = "temp"

	WEBUI   = "stable-diffusion-webui"
	COMFYUI = "ComfyUI"
)

// DatabasePath is the location of the sqlite database inside the
// system folder.
var DatabasePath = filepath.Join(SYSTEM, "installer.sqlite")

// Model folders of the Stable Diffusion web UI, by asset category.
var WebUIModelFolders = map[string]string{
	"checkpoint": filepath.Join(WEBUI, "models", "Stable-diffusion"),
	"lora":       filepath.Join(WEBUI, "models", "Lora"),
	"codeformer": filepath.Join(WEBUI, "models", "Codeformer"),
	"controlnet": filepath.Join(WEBUI, "models", "ControlNet"),
	"esrgan":     filepath.Join(WEBUI, "models", "ESRGAN"),
	"realesrgan": filepath.Join(WEBUI, "models", "RealESRGAN"),
	"extension":  filepath.Join(WEBUI, "extensions"),
}

// Model folders of the ComfyUI application, by asset category.
var ComfyUIModelFolders = map[string]string{
	"diffusion":    filepath.Join(COMFYUI, "models", "diffusion_models"),
	"vae":          filepath.Join(COMFYUI, "models", "vae"),
	"clip":         filepath.Join(COMFYUI, "models", "clip"),
	"custom-nodes": filepath.Join(COMFYUI, "custom_nodes"),
}
