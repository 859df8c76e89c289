package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"atomicon/ico"
	"atomicon/icon"
	"atomicon/log"
	"atomicon/preview"
	"atomicon/verify"
)

var version = "dev"

const artifactName = "icon.ico"

func main() {
	outFlag := flag.String("out", "", "write the icon to this path (default: icon.ico next to the executable)")
	pngFlag := flag.Bool("png", false, "also write a PNG rendition next to the icon")
	previewFlag := flag.Bool("preview", false, "draw the icon in the terminal after writing")
	checkFlag := flag.Bool("check", false, "verify an existing icon instead of writing one")
	debugFlag := flag.Bool("debug", false, "enable diagnostic logging on stderr")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("atomicon %s\n", version)
		os.Exit(0)
	}

	if *debugFlag {
		log.Init()
	}

	path, err := resolveOutput(*outFlag)
	if err != nil {
		fatal(err)
	}

	if *checkFlag {
		os.Exit(verify.Run(path))
	}

	data, err := generate(path)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("wrote %s\n", path)
	fmt.Printf("%d bytes\n", len(data))

	if *pngFlag {
		pngPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		if err := writePNG(pngPath, icon.Render()); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", pngPath)
	}

	if *previewFlag {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Warn("stdout is not a terminal, preview prints without color")
		}
		fmt.Print(preview.Render(icon.Render()))
	}
}

// resolveOutput returns an absolute target path. Without -out the icon
// lands next to the running executable, so build scripts can invoke the
// generator from any working directory.
func resolveOutput(out string) (string, error) {
	if out != "" {
		return filepath.Abs(out)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), artifactName), nil
}

func generate(path string) ([]byte, error) {
	start := time.Now()
	img := icon.Render()
	log.Stage("render", time.Since(start))

	start = time.Now()
	data := ico.Encode(img)
	log.Stage("encode", time.Since(start))

	start = time.Now()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}
	log.Stage("write", time.Since(start))
	log.Artifact(path, len(data))

	return data, nil
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	log.Errorf("%v", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
