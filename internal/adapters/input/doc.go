// Package input provides line sources for the batcher.
//
// [ReaderSource] reads from any io.Reader (standard input, an opened file,
// an in-memory buffer). [FollowSource] reads a file and keeps waiting for
// appended data using fsnotify, similar to tail -f.
package input
