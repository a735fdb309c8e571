package zalo

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// The fixed subtree of an extracted backup:
//
//	<root>/<account>/Downloads/database/<account>_zconversation.zdb
//	<root>/<account>/Downloads/database/<account>_zmessage.zdb
//	<root>/<account>/Downloads/picture/<channel>[_group]/z<msgId>_<md5(url)>.<ext>

// ConversationLogPath returns the path of the conversation log.
func ConversationLogPath(root, account string) string {
	return filepath.Join(root, account, "Downloads", "database", account+"_zconversation.zdb")
}

// MessageLogPath returns the path of the message log.
func MessageLogPath(root, account string) string {
	return filepath.Join(root, account, "Downloads", "database", account+"_zmessage.zdb")
}

// MediaDir returns the directory downloaded pictures for a conversation
// live in. Group conversations get a "_group" suffix on the channel id.
func MediaDir(root, account string, conv ConversationID) string {
	dir := strconv.FormatInt(conv.ID, 10)
	if conv.Kind == KindGroup {
		dir += "_group"
	}
	return filepath.Join(root, account, "Downloads", "picture", dir)
}

// MediaFileName returns the name the exporting application stores a
// downloaded media file under: "z<msgId>_<md5 of the origin URL><ext>".
func MediaFileName(msgID int64, originURL string) string {
	sum := md5.Sum([]byte(originURL))
	return fmt.Sprintf("z%d_%x%s", msgID, sum, ExtFromURL(originURL))
}

// NameFromURL returns the file name component of a media URL.
func NameFromURL(raw string) string {
	return path.Base(urlPath(raw))
}

// ExtFromURL returns the lowercased extension of a media URL's path,
// leading dot included, or "" when there is none.
func ExtFromURL(raw string) string {
	return strings.ToLower(path.Ext(urlPath(raw)))
}

// MIMEFromExt maps a media file extension to the attachment MIME type.
// The viewer expects "jpeg", never "jpg"; extensionless URLs default to
// JPEG because that is what the export format produces.
func MIMEFromExt(ext string) string {
	e := strings.TrimPrefix(strings.ToLower(ext), ".")
	switch e {
	case "", "jpg":
		e = "jpeg"
	}
	return "image/" + e
}

func urlPath(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return u.Path
	}
	return raw
}
