package i18n

const (
	Start            Key = "start"
	Help             Key = "help"
	GenericError     Key = "generic_error"
	Cancelled        Key = "cancelled"
	TryOtherCommands Key = "try_other_commands"
	UnknownCommand   Key = "unknown_command"
	UseCommands      Key = "use_commands"
	LangSwitched     Key = "lang_switched"
	NoPreviousStep   Key = "no_previous_step"
	InvalidChoice    Key = "invalid_choice"
	AccessDenied     Key = "access_denied"

	BtnCancel     Key = "btn_cancel"
	BtnBack       Key = "btn_back"
	BtnHelp       Key = "btn_help"
	BtnSkip       Key = "btn_skip"
	BtnYes        Key = "btn_yes"
	BtnNo         Key = "btn_no"
	BtnDone       Key = "btn_done"
	BtnConfirm    Key = "btn_confirm"
	BtnDetails    Key = "btn_details"
	BtnAdd        Key = "btn_add"
	BtnShare      Key = "btn_share"
	BtnDelete     Key = "btn_delete"
	BtnEdit       Key = "btn_edit"
	BtnDeleteFile Key = "btn_delete_file"
	BtnPrev       Key = "btn_prev"
	BtnNext       Key = "btn_next"
	BtnSendHere   Key = "btn_send_here"
	BtnKeep       Key = "btn_keep"


	EnterFolderName    Key = "enter_folder_name"
	InvalidFolderName  Key = "invalid_folder_name"
	FolderExists       Key = "folder_exists"
	SendFiles          Key = "send_files"
	FileReceived       Key = "file_received"
	TextTooLong        Key = "text_too_long"
	FileTooLarge       Key = "file_too_large"
	NoFiles            Key = "no_files"
	EnterDescription   Key = "enter_description"
	DescriptionTooLong Key = "description_too_long"
	EnterTags          Key = "enter_tags"
	TagsTooLong        Key = "tags_too_long"
	AskPassword        Key = "ask_password"
	EnterNewPassword   Key = "enter_new_password"
	PasswordTooShort   Key = "password_too_short"
	AskCover           Key = "ask_cover"
	CoverMustBePhoto   Key = "cover_must_be_photo"
	Saving             Key = "saving"
	FolderCreated      Key = "folder_created"

	EnterFolderToOpen Key = "enter_folder_to_open"
	FolderNotFound    Key = "folder_not_found"
	EnterPassword     Key = "enter_password"
	WrongPassword     Key = "wrong_password"
	FolderEmpty       Key = "folder_empty"
	LabelDescription  Key = "label_description"
	LabelTags         Key = "label_tags"
	LabelCreated      Key = "label_created"
	LabelProtected    Key = "label_protected"
	FileUnavailable   Key = "file_unavailable"

	NoFolders         Key = "no_folders"
	FolderListTitle   Key = "folder_list_title"
	EnterSearch       Key = "enter_search"
	NoResults         Key = "no_results"
	SearchResultTitle Key = "search_result_title"
	SearchExpired     Key = "search_expired"

	EnterFolderToAdd Key = "enter_folder_to_add"
	FilesAdded       Key = "files_added"

	EnterFolderToEdit     Key = "enter_folder_to_edit"
	ChooseField           Key = "choose_field"
	FieldName             Key = "field_name"
	FieldDescription      Key = "field_description"
	FieldTags             Key = "field_tags"
	FieldPassword         Key = "field_password"
	FieldCover            Key = "field_cover"
	EnterNewName          Key = "enter_new_name"
	EnterNewDescription   Key = "enter_new_description"
	EnterNewTags          Key = "enter_new_tags"
	EnterPasswordOrRemove Key = "enter_password_or_remove"
	SendNewCover          Key = "send_new_cover"
	FolderUpdated         Key = "folder_updated"
	PasswordRemoved       Key = "password_removed"

	EnterFolderDeleteFile Key = "enter_folder_delete_file"
	ChooseFileToDelete    Key = "choose_file_to_delete"
	FileDeleted           Key = "file_deleted"
	FileNotFound          Key = "file_not_found"

	EnterFolderToDelete Key = "enter_folder_to_delete"
	ConfirmDelete       Key = "confirm_delete"
	FolderDeleted       Key = "folder_deleted"

	EnterYouTubeURL   Key = "enter_youtube_url"
	InvalidYouTubeURL Key = "invalid_youtube_url"
	ChooseQuality     Key = "choose_quality"
	InvalidQuality    Key = "invalid_quality"
	Downloading       Key = "downloading"
	DownloadFailed    Key = "download_failed"
	VideoSaved        Key = "video_saved"
	UploadingLink     Key = "uploading_link"
	VideoLink         Key = "video_link"
	VideoKept         Key = "video_kept"
	ChoiceExpired     Key = "choice_expired"
)
