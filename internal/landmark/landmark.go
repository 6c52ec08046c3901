// Package landmark defines the face landmark contract consumed by the
// overlay compositor. A detector (an external service or model) returns one
// Set per detected face; each Set is an ordered, fixed-length sequence of
// normalized points whose indices carry fixed anatomical meaning.
package landmark

// MeshPoints is the number of points in a full face-mesh landmark set.
const MeshPoints = 468

// Anatomical indices into a face-mesh Set. The index -> role mapping is the
// detector's published contract; only the points the overlays actually
// consume are named here.
const (
	IndexForehead     = 10  // top of the face oval
	IndexLeftEyeOuter = 33  // outer corner of the left eye (image left)
	IndexLeftCheek    = 50  // left cheekbone
	IndexChin         = 152 // bottom of the face oval
	IndexRightEyeOut  = 263 // outer corner of the right eye (image right)
	IndexRightCheek   = 280 // right cheekbone
)

// FaceOval lists the mesh indices of the face contour ring, in connection
// order. Used to build the face segmentation hull for background replacement.
var FaceOval = []int{
	10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
	397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
	172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
}

// Point is a single detected landmark. X and Y are normalized to [0, 1]
// relative to frame width and height; Z is normalized depth with the head
// center as origin (smaller is closer to the camera).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Set is the ordered landmark collection for one detected face. A full
// face-mesh set has MeshPoints entries, but consumers must tolerate shorter
// sets and skip work that needs missing indices.
type Set []Point

// Has reports whether every given index is present in the set.
func (s Set) Has(indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= len(s) {
			return false
		}
	}
	return true
}

// Pixel converts the landmark at index i to pixel coordinates for a frame of
// the given dimensions. The caller must check Has(i) first.
func (s Set) Pixel(i, width, height int) (float64, float64) {
	return s[i].X * float64(width), s[i].Y * float64(height)
}
