package config

import "gopkg.in/yaml.v3"

// StyleBlock is the raw style section of the document. Fields are nil when
// absent or not a string.
type StyleBlock struct {
	FgColor *string
	Size    *string
}

// decodeStyleBlock reads the optional string fields of a style mapping node.
// Unknown keys and non-string values are ignored.
func decodeStyleBlock(node *yaml.Node) StyleBlock {
	var block StyleBlock
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := resolve(node.Content[i]), resolve(node.Content[i+1])
		if !isString(k) || !isString(v) {
			continue
		}
		value := v.Value
		switch k.Value {
		case "fg_color":
			block.FgColor = &value
		case "size":
			block.Size = &value
		}
	}
	return block
}

// ResolveStyle turns a style block into a Style, applying defaults for absent
// fields. It fails only on an unrecognized size name.
func ResolveStyle(block StyleBlock) (Style, error) {
	style := DefaultStyle()

	if block.Size != nil {
		size, err := ParseFontSize(*block.Size)
		if err != nil {
			return Style{}, err
		}
		style.Size = size
	}

	if block.FgColor != nil {
		style.FgColor = *block.FgColor
	}

	return style, nil
}
