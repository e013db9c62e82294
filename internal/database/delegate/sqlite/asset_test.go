package sqlite_test

import (
	"testing"

	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/stretchr/testify/assert"
)

func TestStoreImportedAsset(t *testing.T) {
	clearTestEnvironment()
	s := openedTestDelegate(t)

	mirror := "sj://models/Comfy-Org/Wan_2.2_ComfyUI_Repackaged/wan_2.1_vae.safetensors"
	if err := s.StoreImported(
		[]importer.Profile{},
		[]importer.Asset{{
			Slug:     "wan21-vae",
			Url:      "https://huggingface.co/Comfy-Org/Wan_2.2_ComfyUI_Repackaged/resolve/main/split_files/vae/wan_2.1_vae.safetensors",
			Mirror:   &mirror,
			Category: "vae",
			FileName: "wan_2.1_vae.safetensors",
		}, {
			Slug:     "codeformer",
			Url:      "https://huggingface.co/alexgenovese/facerestore/resolve/main/codeformer.pth",
			Category: "codeformer",
			FileName: "codeformer.pth",
		}}); err != nil {
		t.Log(err)
		t.Fail()
	}

	if entities, err := s.GetAssets(); err != nil {
		t.Log(err)
		t.Fail()
	} else {
		assert.Len(t, entities, 2)
		for _, entity := range entities {
			switch entity.Slug {
			case "wan21-vae":
				assert.Equal(t, "vae", entity.Category)
				assert.True(t, entity.MirrorUrl.Valid)
				assert.Equal(t, mirror, entity.MirrorUrl.String)
			case "codeformer":
				assert.Equal(t, "codeformer", entity.Category)
				assert.False(t, entity.MirrorUrl.Valid)
			default:
				t.Errorf("Unexpected asset %s", entity.Slug)
			}
		}
	}

	s.Close()
	clearTestEnvironment()
}
