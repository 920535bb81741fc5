// Package profile loads device-profile documents.
//
// # Profile Document Format
//
// Profiles live in a JSON document with a top-level "profiles" array. Each
// profile carries an identifier, a display name, the device model, free-text
// notes, a part-name to file-name-pattern mapping, a boolean flag mapping,
// and whether HOME_CSC should be preferred by default:
//
//	{
//	  "profiles": [
//	    {
//	      "id": "s8-global",
//	      "name": "Galaxy S8 (global)",
//	      "model": "SM-G950F",
//	      "notes": "Stock firmware, CSC wipes data",
//	      "patterns": {
//	        "BL": "BL_G950F*.tar.md5",
//	        "AP": "AP_G950F*.tar.md5",
//	        "CP": "CP_G950F*.tar.md5",
//	        "CSC": "CSC_OXM*.tar.md5",
//	        "HOME_CSC": "HOME_CSC_OXM*.tar.md5"
//	      },
//	      "flags": {"reboot": true, "nand_erase": false},
//	      "default_csc_prefer_home": true
//	    }
//	  ]
//	}
//
// Missing fields default to safe values: an absent name becomes "Unnamed"
// and default_csc_prefer_home defaults to true (the data-preserving choice).
//
// # Usage
//
//	profiles, err := profile.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := profiles[0]
//	files := firmware.Detect(dir, p.PatternSet(), p.DefaultCSCPreferHome)
//	opts := p.FlashOptions()
package profile
