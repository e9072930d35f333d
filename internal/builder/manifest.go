package builder

import (
	_ "embed"
	"fmt"

	"github.com/dosanma1/sysgen/internal/config"
	"github.com/dosanma1/sysgen/internal/generator"
	"github.com/dosanma1/sysgen/internal/template"
)

// ManifestName is the registry name of the manifest builder.
const ManifestName = "manifest"

//go:embed schemas/manifest.v1.schema.json
var manifestSchema []byte

// ManifestBuilder describes an image entirely through configuration keys.
//
// Keys are applied in a fixed order: comment, image or tarball, env,
// packages, dirs, files, helpers, lines, links, run. Helpers marked with
// template are rendered with the whole configuration as data; free-form
// values for them live under vars.
type ManifestBuilder struct{}

// NewManifestBuilder creates a new manifest builder.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{}
}

// Name returns the builder name.
func (b *ManifestBuilder) Name() string {
	return ManifestName
}

// Schema returns the JSON schema the configuration must satisfy.
func (b *ManifestBuilder) Schema() []byte {
	return manifestSchema
}

// Build validates cfg against the manifest schema and records the image.
func (b *ManifestBuilder) Build(gen *generator.Generator, cfg config.Mapping) error {
	if err := config.ValidateSchema(cfg, b.Schema()); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	if text, ok := cfg.String("comment"); ok {
		gen.Comment(text)
	}
	if image, ok := cfg.String("image"); ok {
		gen.FromNamed(image)
	}
	if tarball, ok := cfg.Map("tarball"); ok {
		gen.FromTarball(getString(tarball, "path"), getString(tarball, "dest"))
	}

	if env, ok := cfg.Map("env"); ok {
		for _, name := range env.Keys() {
			gen.Env(name, getString(env, name))
		}
	}

	if _, ok := cfg["packages"]; ok {
		gen.Install(cfg.Strings("packages")...)
	}

	for _, dir := range getMappings(cfg, "dirs") {
		gen.Mkdir(getString(dir, "path"), getString(dir, "mode"))
	}

	for _, file := range getMappings(cfg, "files") {
		if err := gen.CopyFile(getString(file, "src"), getString(file, "dest"), getString(file, "mode")); err != nil {
			return err
		}
	}

	engine := template.NewEngine()
	for _, h := range getMappings(cfg, "helpers") {
		name, content := getString(h, "name"), getString(h, "content")
		if getBool(h, "template") {
			rendered, err := engine.Render(name, content, cfg.Interface())
			if err != nil {
				return fmt.Errorf("helper %s: %w", name, err)
			}
			content = rendered
		}
		if _, err := gen.WriteHelper(name, []byte(content), getString(h, "mode")); err != nil {
			return err
		}
	}

	for _, l := range getMappings(cfg, "lines") {
		if getBool(l, "append") {
			gen.AppendLines(getString(l, "dest"), l.Strings("lines")...)
		} else {
			gen.WriteLines(getString(l, "dest"), l.Strings("lines")...)
		}
	}

	for _, link := range getMappings(cfg, "links") {
		gen.Symlink(getString(link, "src"), getString(link, "dest"))
	}

	run, _ := cfg["run"].(config.Sequence)
	for _, item := range run {
		if err := runItem(gen, item); err != nil {
			return err
		}
	}

	return nil
}

func runItem(gen *generator.Generator, item config.Value) error {
	if m, ok := item.(config.Mapping); ok {
		if seq, ok := m["sequence"].(config.Sequence); ok {
			cmds := make([]generator.Command, 0, len(seq))
			for _, v := range seq {
				cmd, err := toCommand(v)
				if err != nil {
					return err
				}
				cmds = append(cmds, cmd)
			}
			gen.RunMulti(cmds...)
			return nil
		}

		cmd, err := toCommand(m["command"])
		if err != nil {
			return err
		}
		var opts []generator.RunOption
		if stdin := getString(m, "stdin"); stdin != "" {
			opts = append(opts, generator.WithStdin(stdin))
		}
		gen.Run(cmd, opts...)
		return nil
	}

	cmd, err := toCommand(item)
	if err != nil {
		return err
	}
	gen.Run(cmd)
	return nil
}

// toCommand maps a string to a literal shell command and a sequence to
// argument tokens.
func toCommand(v config.Value) (generator.Command, error) {
	switch c := v.(type) {
	case config.Scalar:
		return generator.Shell(c.String()), nil
	case config.Sequence:
		tokens := make([]string, 0, len(c))
		for _, t := range c {
			s, ok := t.(config.Scalar)
			if !ok {
				return nil, fmt.Errorf("run: command tokens must be scalars, got %s", t.Kind())
			}
			tokens = append(tokens, s.String())
		}
		return generator.Args(tokens...), nil
	default:
		return nil, fmt.Errorf("run: unsupported command value")
	}
}

func getString(m config.Mapping, key string) string {
	v, ok := m[key].(config.Scalar)
	if !ok {
		return ""
	}
	return v.String()
}

func getBool(m config.Mapping, key string) bool {
	v, ok := m[key].(config.Scalar)
	if !ok {
		return false
	}
	b, ok := v.Interface().(bool)
	return ok && b
}

func getMappings(m config.Mapping, key string) []config.Mapping {
	seq, ok := m[key].(config.Sequence)
	if !ok {
		return nil
	}
	out := make([]config.Mapping, 0, len(seq))
	for _, item := range seq {
		if mm, ok := item.(config.Mapping); ok {
			out = append(out, mm)
		}
	}
	return out
}
