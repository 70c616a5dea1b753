package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/formats"
	"github.com/Faultbox/objkit/pkg/mesh"
)

type objectSummary struct {
	Name       string `yaml:"name"`
	Named      bool   `yaml:"named"`
	Vertices   int    `yaml:"vertices"`
	Normals    int    `yaml:"normals"`
	UVTextures int    `yaml:"uv_textures"`
	Faces      int    `yaml:"faces"`
	Smoothing  uint8  `yaml:"smoothing"`
}

type fileSummary struct {
	File    string          `yaml:"file"`
	Objects []objectSummary `yaml:"objects"`
}

func summarize(file string, objs []formats.OBJObject) fileSummary {
	s := fileSummary{File: file, Objects: make([]objectSummary, 0, len(objs))}
	for i := range objs {
		o := &objs[i]
		s.Objects = append(s.Objects, objectSummary{
			Name:       o.DisplayName(),
			Named:      o.HasName(),
			Vertices:   len(o.Vertices),
			Normals:    len(o.Normals),
			UVTextures: len(o.UVTextures),
			Faces:      len(o.Faces),
			Smoothing:  uint8(o.Smoothing),
		})
	}
	return s
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func cmdInfo(w io.Writer, cfg *config.Config, args []string) error {
	file, err := fileArg(args, "objtool info [flags] <file.obj>")
	if err != nil {
		return err
	}

	m, err := newManager(cfg, cfg.Parse.Strict)
	if err != nil {
		return err
	}
	defer m.Close()

	objs, err := m.LoadOBJ(file)
	if err != nil {
		return err
	}

	summary := summarize(file, objs)
	if cfg.Output.Format == "yaml" {
		return writeYAML(w, summary)
	}

	fmt.Fprintf(w, "File:    %s\n", summary.File)
	fmt.Fprintf(w, "Objects: %d\n", len(summary.Objects))
	for _, o := range summary.Objects {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", o.Name)
		fmt.Fprintf(w, "    %-10s %d\n", "vertices", o.Vertices)
		fmt.Fprintf(w, "    %-10s %d\n", "normals", o.Normals)
		fmt.Fprintf(w, "    %-10s %d\n", "uvs", o.UVTextures)
		fmt.Fprintf(w, "    %-10s %d\n", "faces", o.Faces)
		fmt.Fprintf(w, "    %-10s %d\n", "smoothing", o.Smoothing)
	}
	return nil
}

func cmdDump(w io.Writer, cfg *config.Config, args []string) error {
	file, err := fileArg(args, "objtool dump [flags] <file.obj>")
	if err != nil {
		return err
	}

	m, err := newManager(cfg, cfg.Parse.Strict)
	if err != nil {
		return err
	}
	defer m.Close()

	objs, err := m.LoadOBJ(file)
	if err != nil {
		return err
	}

	for i := range objs {
		dumpObject(w, &objs[i])
	}
	return nil
}

func dumpObject(w io.Writer, o *formats.OBJObject) {
	if o.HasName() {
		fmt.Fprintf(w, "%s %s\n", formats.OBJTokenO, *o.Name)
	} else {
		fmt.Fprintln(w, formats.OBJTokenO)
	}
	for _, v := range o.Vertices {
		fmt.Fprintf(w, "  %-2s %s\n", formats.OBJTokenV, v)
	}
	for _, n := range o.Normals {
		fmt.Fprintf(w, "  %-2s %s\n", formats.OBJTokenVn, n)
	}
	for _, t := range o.UVTextures {
		fmt.Fprintf(w, "  %-2s %s\n", formats.OBJTokenVt, t)
	}
	fmt.Fprintf(w, "  %-2s %s\n", formats.OBJTokenS, o.Smoothing)
	for _, f := range o.Faces {
		fmt.Fprintf(w, "  %-2s %s\n", formats.OBJTokenF, f)
	}
}

type meshSummary struct {
	Name     string     `yaml:"name"`
	Vertices int        `yaml:"vertices"`
	Indices  int        `yaml:"indices"`
	Min      [3]float32 `yaml:"min,flow"`
	Max      [3]float32 `yaml:"max,flow"`
}

func cmdMesh(w io.Writer, cfg *config.Config, args []string) error {
	file, err := fileArg(args, "objtool mesh [flags] <file.obj>")
	if err != nil {
		return err
	}

	m, err := newManager(cfg, cfg.Parse.Strict)
	if err != nil {
		return err
	}
	defer m.Close()

	obj, err := m.LoadOBJSingle(file)
	if err != nil {
		return err
	}

	if cfg.Mesh.SkipInvalidFaces {
		for _, f := range invalidFaces(mesh.Validate(obj)) {
			logger.Warn("skipping face",
				zap.Int("face", f.face),
				zap.Int("bad_indices", len(f.errs)),
				zap.Error(f.errs[0]))
		}
	}

	built, err := mesh.Build(obj, mesh.BuildOptions{
		CenterXZ:         cfg.Mesh.CenterXZ,
		SkipInvalidFaces: cfg.Mesh.SkipInvalidFaces,
	})
	if err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}

	summary := meshSummary{
		Name:     built.Name,
		Vertices: len(built.Vertices),
		Indices:  len(built.Indices),
		Min:      built.Bounds.Min,
		Max:      built.Bounds.Max,
	}
	if cfg.Output.Format == "yaml" {
		return writeYAML(w, summary)
	}

	lo := formats.NewVertex(summary.Min[0], summary.Min[1], summary.Min[2])
	hi := formats.NewVertex(summary.Max[0], summary.Max[1], summary.Max[2])
	fmt.Fprintf(w, "Mesh:     %s\n", summary.Name)
	fmt.Fprintf(w, "Vertices: %d\n", summary.Vertices)
	fmt.Fprintf(w, "Indices:  %d\n", summary.Indices)
	fmt.Fprintf(w, "Min:      %s\n", lo)
	fmt.Fprintf(w, "Max:      %s\n", hi)
	return nil
}

type faceErrors struct {
	face int
	errs []*mesh.IndexError
}

// invalidFaces groups index errors by face, in order of first appearance.
func invalidFaces(errs []*mesh.IndexError) []faceErrors {
	var out []faceErrors
	pos := make(map[int]int)
	for _, e := range errs {
		i, ok := pos[e.Face]
		if !ok {
			i = len(out)
			pos[e.Face] = i
			out = append(out, faceErrors{face: e.Face})
		}
		out[i].errs = append(out[i].errs, e)
	}
	return out
}

func cmdValidate(w io.Writer, cfg *config.Config, args []string) error {
	file, err := fileArg(args, "objtool validate [flags] <file.obj>")
	if err != nil {
		return err
	}

	m, err := newManager(cfg, true)
	if err != nil {
		return err
	}
	defer m.Close()

	objs, err := m.LoadOBJ(file)
	if err != nil {
		return err
	}

	problems := 0
	for i := range objs {
		for _, e := range mesh.Validate(&objs[i]) {
			fmt.Fprintf(w, "%s: %s: %v\n", file, objs[i].DisplayName(), e)
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d invalid face indices", problems)
	}
	fmt.Fprintf(w, "%s: OK (%d objects)\n", file, len(objs))
	return nil
}

// cmdConfig prints the effective config, or writes it with "save [path]".
func cmdConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return writeYAML(w, cfg)
	}
	if args[0] != "save" || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: objtool config [flags] [save [path]]")
		return errUsage
	}

	path := config.UserPath()
	var err error
	if len(args) == 2 {
		path = args[1]
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	logger.Info("config saved", zap.String("path", path))
	fmt.Fprintf(w, "Saved config to %s\n", path)
	return nil
}
