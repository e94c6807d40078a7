package spellkit

import "github.com/tidwall/gjson"

// parseManifestVersion extracts the "version" field from an optional JSON
// manifest, grounded on the original_source Rust implementation's
// manifest_path/manifest_version handling (a feature the distilled spec.md
// dropped — see SPEC_FULL.md §11). Invalid or missing JSON yields an empty
// string rather than an error: a manifest is purely informational and must
// never fail a Load.
func parseManifestVersion(data []byte) string {
	result := gjson.GetBytes(data, "version")
	if !result.Exists() {
		return ""
	}
	return result.String()
}
