package view

// DefaultManifest lists the rendered preview assets shipped with the configurator.
// Not every combination is rendered: interiors without a floor finish and the
// oak lining in the largest nest fall back to their nearest neighbour.
func DefaultManifest() []string {
	var ids []string
	for _, v := range []View{ViewExterior, ViewInterior, ViewSolar, ViewWindows} {
		ids = append(ids, DefaultAssetID(v))
	}

	for _, b := range sizeBuckets {
		for _, env := range envelopePart.suffixes {
			ids = append(ids, assetID(ViewExterior, b.bucket, []string{env}))
			if env != "platten_weiss" {
				ids = append(ids, assetID(ViewSolar, b.bucket, []string{env}))
			}
		}
		for _, lining := range liningPart.suffixes {
			if lining == "eiche" && b.bucket == "155" {
				continue
			}
			for _, flooring := range flooringPart.suffixes {
				if flooring == "ohne" {
					continue
				}
				ids = append(ids, assetID(ViewInterior, b.bucket, []string{lining, flooring}))
			}
		}
	}

	for _, lining := range liningPart.suffixes {
		ids = append(ids, assetID(ViewWindows, "", []string{lining}))
	}
	return ids
}
