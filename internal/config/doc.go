// Package config loads the emoti configuration file.
//
// The configuration is a YAML document holding the snippet mappings shown in
// the picker and the style used to render them:
//
//	mappings:
//	  smile: "🙂"
//	  heart: "❤️"
//	style:
//	  fg_color: "#eeeeee"  # optional
//	  size: small          # optional
//
// # Configuration File Location
//
// The file is looked up under the first available base directory:
//   - $XDG_CONFIG_HOME/emoti/config.yaml
//   - $HOME/.config/emoti/config.yaml
//   - /home/$USER/emoti/config.yaml
//
// # Loading Rules
//
// Both the mappings and the style blocks are required and must be YAML
// mappings. Mapping entries whose key or value is not a string are dropped
// without error. Style fields are optional and fall back to defaults.
//
// # Usage Example
//
//	path, err := config.ResolvePath(os.LookupEnv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := config.LoadFile(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range cfg.Entries() {
//	    fmt.Println(m.Key, m.Value)
//	}
//
// A Config is immutable once loaded and safe to share between goroutines.
package config
