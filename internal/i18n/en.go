package i18n

var en = map[Key]string{
	Start:            "Welcome! I keep your files, photos and notes in folders, optionally protected by a password.\nUse the menu below or send /help.",
	Help:             "Commands:\n/CrFolders - create a folder\n/OpenFolder - open a folder\n/ListFolders - list your folders\n/SearchFolders - search folders\n/AddFiles - add files to a folder\n/EditFolder - edit a folder\n/DeleteFile - delete a file from a folder\n/DeleteFolder - delete a folder\n/DownloadYouTube - download a YouTube video\n/Lang - switch language\n\nDuring a step you can press Cancel, Back or Help.",
	GenericError:     "Something went wrong. Please try again later.",
	Cancelled:        "Operation cancelled.",
	TryOtherCommands: "You can use other commands now.",
	UnknownCommand:   "Unknown command. Send /help to see what I can do.",
	UseCommands:      "Please pick a command from the menu or send /help.",
	LangSwitched:     "Language set to English.",
	NoPreviousStep:   "You are already at the first step.",
	InvalidChoice:    "Please choose one of the options.",
	AccessDenied:     "You don't have access to this folder.",

	BtnCancel:     "❌ Cancel",
	BtnBack:       "🔙 Back",
	BtnHelp:       "❓ Help",
	BtnSkip:       "⏭ Skip",
	BtnYes:        "Yes",
	BtnNo:         "No",
	BtnDone:       "Upload completed.",
	BtnConfirm:    "✅ Delete",
	BtnDetails:    "ℹ️ Details",
	BtnAdd:        "➕ Add",
	BtnShare:      "🔗 Share",
	BtnDelete:     "🗑 Delete",
	BtnEdit:       "✏️ Edit",
	BtnDeleteFile: "🗑 Delete file",
	BtnPrev:       "⬅️ Previous",
	BtnNext:       "Next ➡️",
	BtnSendHere:   "📤 Send here",
	BtnKeep:       "📁 Keep in folder",

	EnterFolderName:    "Enter a folder name (letters, digits, _, - and spaces, up to 255 characters):",
	InvalidFolderName:  "Invalid folder name. Use letters, digits, _, - and spaces only (up to 255 characters):",
	FolderExists:       "A folder with this name already exists. Please choose another name:",
	SendFiles:          "Now send the files or text you want to store. When you are finished, press \"Upload completed.\"",
	FileReceived:       "Received (%d so far). Send more or press \"Upload completed.\"",
	TextTooLong:        "The text is too long (max %d characters).",
	FileTooLarge:       "The file is too large (max %d MB).",
	NoFiles:            "Send at least one file or text first.",
	EnterDescription:   "Enter a description for the folder, or press Skip:",
	DescriptionTooLong: "The description is too long (max %d characters).",
	EnterTags:          "Enter tags separated by commas, or press Skip:",
	TagsTooLong:        "Tags are too long (max %d characters).",
	AskPassword:        "Do you want to protect this folder with a password?",
	EnterNewPassword:   "Enter a password (at least %d characters):",
	PasswordTooShort:   "The password must be at least %d characters long.",
	AskCover:           "Send a cover photo for the folder, or press Skip:",
	CoverMustBePhoto:   "The cover must be a photo. Send a photo or press Skip.",
	Saving:             "Saving, please wait...",
	FolderCreated:      "Folder \"%s\" was created with %d item(s).",

	EnterFolderToOpen: "Enter the name of the folder to open:",
	FolderNotFound:    "Folder not found. Check the name and try again:",
	EnterPassword:     "This folder is protected. Enter the password:",
	WrongPassword:     "Wrong password. Try again or press Cancel:",
	FolderEmpty:       "This folder is empty.",
	LabelDescription:  "Description",
	LabelTags:         "Tags",
	LabelCreated:      "Created",
	LabelProtected:    "Password protected",
	FileUnavailable:   "One file is still being downloaded or is missing.",

	NoFolders:         "You don't have any folders yet. Create one with /CrFolders.",
	FolderListTitle:   "Your folders (page %d of %d):",
	EnterSearch:       "Enter a word to search in folder names, descriptions, tags and notes:",
	NoResults:         "No folders matched \"%s\". Try another word or press Cancel.",
	SearchResultTitle: "Results for \"%s\" (page %d of %d):",
	SearchExpired:     "This search has expired. Start a new one with /SearchFolders.",

	EnterFolderToAdd: "Enter the name of the folder to add files to:",
	FilesAdded:       "%d item(s) added to \"%s\".",

	EnterFolderToEdit:     "Enter the name of the folder to edit:",
	ChooseField:           "What do you want to change?",
	FieldName:             "Name",
	FieldDescription:      "Description",
	FieldTags:             "Tags",
	FieldPassword:         "Password",
	FieldCover:            "Cover image",
	EnterNewName:          "Enter the new folder name:",
	EnterNewDescription:   "Enter the new description:",
	EnterNewTags:          "Enter the new tags, separated by commas:",
	EnterPasswordOrRemove: "Enter a new password (at least %d characters), or press Skip to remove the password:",
	SendNewCover:          "Send the new cover photo:",
	FolderUpdated:         "Folder updated.",
	PasswordRemoved:       "Password removed.",

	EnterFolderDeleteFile: "Enter the name of the folder to delete a file from:",
	ChooseFileToDelete:    "Choose the file to delete:",
	FileDeleted:           "File deleted.",
	FileNotFound:          "File not found.",

	EnterFolderToDelete: "Enter the name of the folder to delete:",
	ConfirmDelete:       "Delete folder \"%s\" and all of its files? This cannot be undone.",
	FolderDeleted:       "Folder \"%s\" was deleted.",

	EnterYouTubeURL:   "Send a YouTube link:",
	InvalidYouTubeURL: "This does not look like a YouTube link. Send a link like https://www.youtube.com/watch?v=...",
	ChooseQuality:     "Choose the video quality:",
	InvalidQuality:    "Please choose one of the listed qualities.",
	Downloading:       "Downloading the video, this may take a while...",
	DownloadFailed:    "Could not download this video.",
	VideoSaved:        "The video was saved in folder \"%s\". What would you like to do?",
	UploadingLink:     "The video is larger than %d MB, uploading it to a file host...",
	VideoLink:         "The video is too large for Telegram. Download it here (the link expires): %s",
	VideoKept:         "The video stays in folder \"%s\".",
	ChoiceExpired:     "This choice has expired.",
}
