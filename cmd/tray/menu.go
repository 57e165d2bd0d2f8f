package main

import (
	"bytes"
	"fmt"
	"image/png"

	"fyne.io/systray"

	"icongen/internal/config"
	"icongen/internal/icon"
)

// trayIconSize is the edge the 16px master is upscaled to. Modern tray bars
// render a raw 16px bitmap blurry.
const trayIconSize = 64

// previewBytes renders the reference icon, upscales it, and returns PNG
// bytes suitable for systray.SetIcon.
func previewBytes() ([]byte, error) {
	img := icon.Scale(icon.Render(icon.BaseSize), trayIconSize)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setupMenu() {
	data, err := previewBytes()
	if err != nil {
		trayLog.Printf("render preview: %v", err)
		systray.Quit()
		return
	}
	systray.SetIcon(data)
	systray.SetTemplateIcon(data, data)
	systray.SetTooltip("icongen preview")

	mVersion := systray.AddMenuItem(fmt.Sprintf("icongen %s", Version), "")
	mVersion.Disable()

	systray.AddSeparator()

	mWrite := systray.AddMenuItem("Write icon.ico", "Write the icon to the current directory")

	systray.AddSeparator()

	mQuit := systray.AddMenuItem("Quit", "Quit the preview")

	// Event loop
	go func() {
		for {
			select {
			case <-mWrite.ClickedCh:
				out := config.EnvOr(config.EnvOutput, config.DefaultOutput)
				if err := icon.Generate(out); err != nil {
					trayLog.Printf("write %s: %v", out, err)
				} else {
					trayLog.Printf("Icon created: %s", out)
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}
