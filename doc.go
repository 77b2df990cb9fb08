// Package mdconfig implements the per-picture mode decision configuration
// stage of an AV1 encoder pipeline.
//
// For every picture handed over by rate control the stage:
//   - builds the quantizer, dequantizer and quantizer-matrix tables for
//     the picture's qindex
//   - projects stored motion of earlier encoded references onto the
//     picture's grid (temporal motion field projection)
//   - derives the feature levels that drive mode decision from the speed
//     preset, slice type, layer, resolution and content statistics
//   - refines the CDEF search from the references' choices, builds the
//     intra block copy hash table when enabled
//   - emits one task per tile group to the encode stage
//
// A Stage is shared by any number of workers:
//
//	st, err := mdconfig.NewStage(cfg, refs, in, outs, nil)
//	if err != nil {
//		return err
//	}
//	err = st.RunWorkers(ctx, 4)
package mdconfig
