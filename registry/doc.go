// Package registry holds the predefined type tables: the bidirectional
// mapping between canonical HDF5 type names (H5T_STD_I32LE, H5T_IEEE_F64BE)
// and native primitive types, parameterized by byte order, plus the
// reference base names.
//
// The tables are process-wide constants built once at package init and never
// mutated afterwards, so they require no synchronization.
package registry
